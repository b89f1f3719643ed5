package content

// SkillGroup is a labelled row of skill badges.
type SkillGroup struct {
	Label  string
	Skills []string
}

// Contact is a link in the contacts section.
type Contact struct {
	Icon  string
	Label string
	Href  string
	// External links open in a new tab.
	External bool
}

// AboutPage is the landing page content. It renders as AboutSections
// blocks: title, subtitle, highlights, skills, contacts.
type AboutPage struct {
	Title      string
	Subtitle   string
	Highlights []string
	Skills     []SkillGroup
	Contacts   []Contact
}

// AboutSections is the number of animated blocks on the about page.
const AboutSections = 5

var about = AboutPage{
	Title:    "about",
	Subtitle: "Building what works — a software engineer.",
	Highlights: []string{
		"8th-semester CSE student at SRM IST, Chennai with a 9.24/10 CGPA",
		"Former SDE Intern at Reliance Jio Platforms Limited, RCP",
		"Winner of 4 national-level hackathons",
	},
	Skills: []SkillGroup{
		{Label: "Languages", Skills: []string{"C++", "Python", "JavaScript", "C", "SQL"}},
		{Label: "Frameworks", Skills: []string{"Node.js", "Express.js", "REST APIs", "React.js", "PyTorch", "OpenCV", "Streamlit"}},
		{Label: "DevOps and Databases", Skills: []string{"AWS", "Oracle Cloud", "Docker", "Kubernetes", "CI/CD", "Git", "MongoDB", "MySQL", "PostgreSQL"}},
		{Label: "Core", Skills: []string{"Data Structures & Algorithms", "OOP", "System Design", "Microservices", "Agile Methodologies"}},
	},
	Contacts: []Contact{
		{Icon: "mail", Label: "pranavkumarkashyap@gmail.com", Href: "mailto:pranavkumarkashyap@gmail.com"},
		{Icon: "github", Label: "github.com/KashyaPranav", Href: "https://github.com/KashyaPranav", External: true},
		{Icon: "linkedin", Label: "linkedin.com/in/pranavkkashyap", Href: "https://linkedin.com/in/pranavkkashyap", External: true},
		{Icon: "resume", Label: "View Resume", Href: "https://drive.google.com/file/d/1eMZ8ohhLLICC5lZyUqAeR8_u2AGn3IGH/view?usp=drivesdk", External: true},
	},
}

// About returns a copy of the landing page content.
func About() AboutPage {
	a := about
	a.Highlights = append([]string(nil), about.Highlights...)
	a.Skills = make([]SkillGroup, len(about.Skills))
	for i, g := range about.Skills {
		a.Skills[i] = SkillGroup{Label: g.Label, Skills: append([]string(nil), g.Skills...)}
	}
	a.Contacts = append([]Contact(nil), about.Contacts...)
	return a
}
