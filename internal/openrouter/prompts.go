package openrouter

import (
	"fmt"
	"strings"

	"thirdcoast.systems/tubescan/pkg/utils/format"
)

// SEOAdviceParams describes the video the LLM should critique.
type SEOAdviceParams struct {
	Title        string
	Description  string
	Hashtags     []string
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
}

// SEOAdvicePrompt asks for advice-only SEO critique of a single video.
// The model is explicitly told not to rewrite the content.
func SEOAdvicePrompt(p SEOAdviceParams) string {
	return fmt.Sprintf(`
You are a YouTube SEO expert. Analyze this YouTube Shorts content and provide detailed SEO recommendations:

Title: %q
Description: %q
Hashtags: %s
Views: %s, Likes: %s, Comments: %s

Please provide:
1. An overall SEO score (0-100)
2. Title optimization feedback (current length, ideal length, and improvement suggestions)
   - Don't suggest rewriting the title
   - Provide specific reasons why the current title needs improvement
   - Explain what SEO principles apply here
   - Each feedback point should be actionable advice
3. Description optimization feedback (current length, ideal length, what's missing)
   - Analyze keyword placement and density
   - Highlight elements that could improve engagement
4. Hashtag optimization (current count, ideal count, relevant hashtags to add)
5. Clear presentation with scores shown for each section:
   - Title: X/100
   - Description: X/100
   - Hashtags: X/100
   - Overall: X/100

Format your response with clear sections and bullet points. Be specific and actionable. Do NOT provide rewritten content - only offer advice on how the user could improve it themselves.
`,
		p.Title,
		p.Description,
		strings.Join(p.Hashtags, ", "),
		format.Count(p.ViewCount),
		format.Count(p.LikeCount),
		format.Count(p.CommentCount),
	)
}

// ParodyPrompt asks for a humorous rewrite of a caption track.
func ParodyPrompt(caption string) string {
	return fmt.Sprintf(`
Create a humorous parody version of this YouTube Shorts script. Make it entertaining and slightly exaggerated while keeping the same basic structure and topic.

Original caption:
"""
%s
"""

Requirements:
1. Maintain the same general topic but add humor and exaggeration
2. Keep approximately the same length as the original
3. Make it entertaining but not offensive
4. Add a touch of satire about typical YouTube creator styles

Create a parody that could actually be used as an alternative script for a humorous remake.
`, caption)
}

// CaptionAdvicePrompt asks for advice-only optimization of a caption track.
func CaptionAdvicePrompt(caption string) string {
	return fmt.Sprintf(`
You are a YouTube Shorts script optimization expert. Analyze this caption/script for a YouTube Short and provide optimization advice (do NOT rewrite the script):

Caption:
"""
%s
"""

Provide advice in these categories (score each 0-100):

1. Hook (First few seconds):
   - Is it attention-grabbing?
   - Does it create curiosity/interest?
   - How quickly does it engage?

2. Structure:
   - Emotional journey (start -> tension -> resolution)
   - Logical flow between sections
   - Pacing and timing

3. Language Style:
   - Conversational vs formal
   - Sentence length and variety
   - Use of power words/phrases

4. Voice & Perspective:
   - 1st/2nd person usage
   - Direct addressing of viewer
   - Authority/relatability balance

5. Emotional Impact:
   - Emotional triggers used
   - Storytelling elements
   - Memorable phrases/moments

6. Core Message:
   - Clarity of main point
   - Call to action strength
   - Memorable takeaway

Format with clear sections, bullet points, and specific actionable advice. Do NOT rewrite the script - only provide advice on how the user could improve it themselves. Focus on short-form content best practices.
`, caption)
}
