package highlight

// Classes applied by the presets.
const (
	DescriptionClass = "font-bold text-white"
	DurationClass    = "text-sky-300 font-bold"
)

// DefaultKeywords are the phrases emphasised in experience entries.
var DefaultKeywords = []string{
	"Jio Associate Verification System",
	"Node.js",
	"Express.js",
	"MongoDB",
	"OTP-based authentication",
	"JWT authorization",
	"AES-256 encryption",
	"GDPR",
	"Flutter",
	"modular architecture",
	"25%",
	"CI/CD",
	"OCR-driven document verification pipeline",
	"PyTorch-based document classification",
	"CNN and LayoutLM",
	"Multi-modal Biometric Security System",
	"98% blink detection",
	"97% speaker verification",
	"Agentic AI-powered interview evaluation",
	"Scalable distributed architectures",
	"System Design and Microservices",
	"Oracle Cloud Infrastructure Foundations Associate",
	"Computer vision and rule-based validation",
	"Logo detection and template matching",
	"Real-time automated speech-to-text processing",
	"Performance Optimization",
	"Docker and Kubernetes",
	"1st Prize Hackverse Hackathon 9.0",
	"SRM Hackathon 9.0 Winner",
	"Innovation Award for impactful innovation",
	"Production-grade application deployment",
	"Full-stack and machine learning systems at scale",
}

var (
	// Description highlights experience bullet points.
	Description = New(DefaultKeywords, DescriptionClass)
	// Duration highlights the date range of an experience entry.
	Duration = New(DefaultKeywords, DurationClass)
)
