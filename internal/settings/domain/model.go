package domain

// Settings is the site-wide singleton document. Exactly one logical
// instance exists; reads of a missing or partial document fall back to
// the defaults below, merged one top-level section at a time.
type Settings struct {
	Site           SiteSettings    `json:"site" bson:"site"`
	Hero           HeroSettings    `json:"hero" bson:"hero"`
	About          AboutSettings   `json:"about" bson:"about"`
	Contact        ContactSettings `json:"contact" bson:"contact"`
	Collaborations []Collaboration `json:"collaborations" bson:"collaborations"`
}

type SiteSettings struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

type HeroSettings struct {
	Subtitle            string `json:"subtitle" bson:"subtitle"`
	Title               string `json:"title" bson:"title"`
	Description         string `json:"description" bson:"description"`
	FeaturedImage       string `json:"featuredImage" bson:"featuredImage"`
	FeaturedTitle       string `json:"featuredTitle" bson:"featuredTitle"`
	FeaturedDescription string `json:"featuredDescription" bson:"featuredDescription"`
}

type AboutSettings struct {
	Name         string   `json:"name" bson:"name"`
	Age          string   `json:"age" bson:"age"`
	Experience   string   `json:"experience" bson:"experience"`
	ProfileImage string   `json:"profileImage" bson:"profileImage"`
	Bio          []string `json:"bio" bson:"bio"`
	WhyHireMe    []string `json:"whyHireMe" bson:"whyHireMe"`
}

type ContactSettings struct {
	Email           string `json:"email" bson:"email"`
	RobloxUsername  string `json:"robloxUsername" bson:"robloxUsername"`
	DiscordUsername string `json:"discordUsername" bson:"discordUsername"`
	DiscordLink     string `json:"discordLink" bson:"discordLink"`
	Availability    string `json:"availability" bson:"availability"`
}

// Collaboration is a partner/group entry, stored embedded inside the
// settings document.
type Collaboration struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Image       string `json:"image" bson:"image"`
	Creator     string `json:"creator" bson:"creator"`
	Role        string `json:"role" bson:"role"`
	MemberCount string `json:"memberCount" bson:"memberCount"`
}

// Defaults returns the documented default settings served when the
// stored document is missing a section.
func Defaults() Settings {
	return Settings{
		Site: SiteSettings{
			Title:       "Pingu Portfolio",
			Description: "Roblox Developer Portfolio",
		},
		Hero: HeroSettings{
			Subtitle:            "ROBLOX DEVELOPER",
			Title:               "Building Immersive Worlds",
			Description:         "Specializing in high-fidelity environments, detailed structures, and immersive experiences on Roblox.",
			FeaturedImage:       "",
			FeaturedTitle:       "Featured Project",
			FeaturedDescription: "Check this out",
		},
		About: AboutSettings{
			Name:         "Pingu",
			Age:          "20",
			Experience:   "3+ Years",
			ProfileImage: "/pingu-profile.png",
			Bio: []string{
				"Hi, I'm Pingu, a professional Roblox Builder and Developer with 3+ years of building experience designing a wide variety of high-quality builds for experiences of all types. I specialize in all Roblox styles while focusing on creating amazing experiences by bringing ideas to life.",
				"I am able to create high quality builds while also keeping the optimization throughout the builds.",
				"I know what players want and what players like so I can create an attracting experience for all players.",
			},
			WhyHireMe: []string{"Quick Turnaround", "High Quality", "Optimized Builds", "Player Focused"},
		},
		Contact: ContactSettings{
			Email:           "danteolmeo@gmail.com",
			RobloxUsername:  "MadCityGamer57746",
			DiscordUsername: "penguin57746",
			DiscordLink:     "https://discord.com/invite/nAFq5RzajF",
			Availability:    "Available",
		},
		Collaborations: []Collaboration{},
	}
}
