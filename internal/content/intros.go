package content

import (
	"strings"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/schedule"
)

// Intro produces the opening section of a post in one of the rotating
// editorial voices.
func Intro(topic *schedule.Topic, style string) string {
	baseTopic := strings.ReplaceAll(strings.ToLower(topic.BaseTopic), "_", " ")
	angle := strings.NewReplacer("-", " ", "_", " ").Replace(topic.Angle)

	switch style {
	case "stat_hook":
		return `
            <p>Let me start with a number that should get your attention: <strong>3.5 million unfilled cybersecurity jobs worldwide.</strong> That's not a typo—and it's exactly why ` + baseTopic + ` matters more than ever for anyone considering this field.</p>

            <p>` + topic.Subtitle + `</p>

            <p>In this guide, I'm going to walk you through everything you need to know—not the fluffy, generic advice you find everywhere else, but practical, specific information you can actually use. Whether you're just starting to explore cybersecurity or you're ready to make a move, this post will give you a clear picture of what's realistic, what's required, and what steps to take next.</p>

            <p>I've seen hundreds of people make this transition successfully. I've also seen people waste months on the wrong approach. The difference usually comes down to having accurate information and a realistic plan. That's what this guide provides.</p>

            <p>By the end of this post, you'll understand exactly where to start, what to prioritize, common mistakes to avoid, and specific action items you can implement this week. Let's get into it.</p>
`
	case "question_hook":
		return `
            <p>Here's a question I hear constantly: <em>"Is it really possible to ` + angle + `?"</em></p>

            <p>The short answer is yes. But that simple answer doesn't help you much, does it? What you really want to know is <em>how</em>—and whether it's realistic for your specific situation.</p>

            <p>` + topic.Subtitle + `</p>

            <p>I've seen this question come up hundreds of times in forums, career advice threads, and conversations with people considering the field. And while the answer is always "yes, it's possible," the path looks different depending on where you're starting from.</p>

            <p>This guide is going to give you the complete picture—the realistic timeline, the actual requirements, and the specific steps that work. No gatekeeping, no oversimplification, just honest information based on what I've seen work in the real world.</p>

            <p>Whether you're exploring cybersecurity as a career option or you've already decided to make the move, the information here will help you move forward with confidence. Let's dive in.</p>
`
	case "myth_buster":
		return `
            <p>Let's kill a myth right now: <strong>you don't need a traditional background to succeed in cybersecurity.</strong></p>

            <p>I know, you've probably heard this before. But then you look at job postings asking for 5 years of experience, a bachelor's degree, and three certifications—and you wonder if the "you can break in without a traditional background" crowd is just blowing smoke.</p>

            <p>They're not. ` + topic.Subtitle + ` But understanding how requires looking past the surface-level advice and getting into what actually happens in hiring decisions.</p>

            <p>This guide breaks down exactly what employers are really looking for, what the actual barriers to entry are (and aren't), and the specific steps that have worked for people who started right where you are now.</p>

            <p>I'm not going to sugarcoat the challenges—this field requires real skills and real effort. But I'm also not going to gatekeep. The opportunity is genuine for people willing to do the work.</p>

            <p>Let's get into the details that actually matter.</p>
`
	case "story_hook":
		return `
            <p>Last year, I talked to someone who made a complete career change into security in just 8 months. They didn't have a CS degree. They didn't have years of IT experience. What they had was a plan—and the persistence to execute it.</p>

            <p>That story isn't unique. It's one of hundreds I've seen play out in cybersecurity career communities. And while each person's path looks a little different, the underlying patterns are remarkably consistent.</p>

            <p>` + topic.Subtitle + `</p>

            <p>This guide captures those patterns. I'm going to walk you through everything from the foundational knowledge you actually need, to the certifications that matter (and the ones that don't), to the job search strategies that work when you don't have years of experience to fall back on.</p>

            <p>The path exists. Thousands of people have walked it before you. This guide shows you exactly what that path looks like so you can walk it too.</p>

            <p>Let's start with the fundamentals.</p>
`
	default: // direct_answer
		return `
            <p>` + topic.Subtitle + `</p>

            <p>No fluff, no gatekeeping—let's get into what actually works.</p>

            <p>I'm going to cover this topic comprehensively, which means this is a longer read. But if you're serious about making progress, the investment is worth it. Bookmark this page, grab a notebook if that helps you, and let's work through this together.</p>

            <p>This guide is based on what I've seen work in practice—not theory, not what sounds good, but what actually produces results for real people making real career moves. The cybersecurity field has genuine opportunities, but navigating it successfully requires accurate information and realistic expectations.</p>

            <p>By the end of this guide, you'll have a clear understanding of where to start, what to prioritize, common mistakes to avoid, and specific action items you can implement immediately.</p>

            <p>Let's get started.</p>
`
	}
}
