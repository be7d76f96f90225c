package signal

// formulaicPhraseList is matched case-insensitively as substrings
var formulaicPhraseList = []string{
	"in today's world",
	"it's important to note",
	"it is important to note",
	"in conclusion",
	"delve into",
	"dive into",
	"let's explore",
	"game changer",
	"game-changer",
	"at the end of the day",
	"leverage",
	"navigate the complexities",
	"in this article",
	"here's the thing",
	"without further ado",
	"it's worth noting",
	"that being said",
	"having said that",
	"comprehensive guide",
	"revolutionize",
	"cutting-edge",
	"seamlessly",
	"furthermore",
	"moreover",
	"in the realm of",
	"paradigm shift",
	"holistic approach",
	"synergy",
	"thought leader",
	"value proposition",
	"best practices",
	"circle back",
	"unpack this",
	"at its core",
	"it goes without saying",
}

// aiWordSet is matched on whole tokens only
var aiWordSet = map[string]struct{}{
	"plethora":       {},
	"delve":          {},
	"leverage":       {},
	"unleash":        {},
	"unlock":         {},
	"harness":        {},
	"revolutionize":  {},
	"paradigm":       {},
	"synergy":        {},
	"holistic":       {},
	"nuanced":        {},
	"robust":         {},
	"transformative": {},
	"cutting-edge":   {},
	"game-changer":   {},
	"supercharge":    {},
	"tapestry":       {},
	"bustling":       {},
	"myriad":         {},
	"pivotal":        {},
	"comprehensive":  {},
	"framework":      {},
	"trajectory":     {},
	"spectrum":       {},
	"facet":          {},
	"confluence":     {},
	"remarkable":     {},
}

// slangSet marks casual human writing, matched on whole tokens
var slangSet = map[string]struct{}{
	"lol":     {},
	"lmao":    {},
	"tbh":     {},
	"fr":      {},
	"smh":     {},
	"ngl":     {},
	"omg":     {},
	"idk":     {},
	"btw":     {},
	"imo":     {},
	"imho":    {},
	"rn":      {},
	"af":      {},
	"bruh":    {},
	"yall":    {},
	"gonna":   {},
	"wanna":   {},
	"gotta":   {},
	"kinda":   {},
	"sorta":   {},
	"dunno":   {},
	"lowkey":  {},
	"highkey": {},
}

// promotionalPhraseList covers call-to-action, listicle and hustle phrasing
var promotionalPhraseList = []string{
	"follow me for",
	"follow for more",
	"like and share",
	"like and subscribe",
	"link in bio",
	"link in the comments",
	"sign up today",
	"don't miss out",
	"limited time",
	"drop a comment",
	"comment below",
	"tag someone",
	"repost if",
	"let that sink in",
	"read that again",
	"agree?",
	"thoughts?",
	"here's how",
	"here are 5",
	"here are five",
	"top 10",
	"top ten",
	"a thread",
	"rise and grind",
	"the grind",
	"hustle culture",
	"stop scrolling",
	"most people won't",
	"99% of people",
	"this changed my life",
}
