package ai

// Canned scripts used when the proxy is down or slow. {name} is replaced
// with the prospect's name. The pools read as deliberately generic so a
// substituted script doesn't feel broken to the user.
var fallbackPools = map[string][]string{
	KindOpener: {
		"Hey {name}! Totally random, but you crossed my mind today. How have things been on your end?",
		"Hi {name}, long time! I saw something that reminded me of you and figured I'd reach out. What's new?",
		"Hey {name}, quick hello! I've been working on something exciting lately and you're one of the sharpest people I know. Open to hearing about it sometime?",
		"Hi {name}! No pitch, just checking in. How's your year going so far?",
		"Hey {name}! I'm expanding a project I'm really proud of and thought of you immediately. Got 10 minutes this week?",
	},
	KindFollowUp: {
		"Hey {name}, just circling back on my last message. No pressure at all, timing is everything!",
		"Hi {name}! Bumping this to the top of your inbox in case it got buried. Still happy to share the details whenever suits.",
		"Hey {name}, following up like I promised. If now's not the right season, no worries. Want me to check back next month?",
		"Hi {name}, me again! I'd hate for you to miss this just because life got busy. Can I send over a 2-minute video?",
	},
	KindPost: {
		"Six months ago I said yes to something outside my comfort zone. Today it pays for my groceries. Growth lives on the other side of awkward.",
		"Small business update: real people, real results, really grateful. DM me if you're curious what I actually do all day.",
		"You don't need more time, you need a decision. That one sentence changed my whole year.",
		"Celebrating a teammate today who hit a goal she set 90 days ago. Consistency is boring right up until it isn't.",
	},
	KindRescuePost: {
		"Showing up today even when it's messy. That's the whole post.",
		"Tiny win today. Stacking them anyway.",
		"Reminder to myself as much as anyone: done beats perfect.",
		"Busy season, still building. See you tomorrow.",
	},
}
