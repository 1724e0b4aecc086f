package content

var (
	homeIntro = `I build intelligent systems that process and understand human language.
My work spans **Text Summarization**, **Sentiment Analysis**, **NER**, and transformer fine-tuning.`

	researchInterests = `Research interests: low-resource language NLP, model efficiency, explainability.`

	sentimentAnalyzer = `Classifies Yorùbá tweets as Positive / Negative / Neutral using transformer models.`

	summarizer = `Fine-tuned transformer-based abstractive summarizer.`

	topicModeling = `Interactive LDA & NMF topic modeling exploration.`

	contactIntro = `Have a project in mind or want to talk NLP? Send a message below.`
)

// Default returns the built-in portfolio content.
func Default() *Portfolio {
	return &Portfolio{
		Owner: Owner{
			Name:         "Oluyale Ezekiel",
			Role:         "NLP & Machine Learning Engineer",
			Intro:        homeIntro,
			ProfileImage: "profile.png",
			Resume:       "resume.pdf",
			Footer:       "Built with Go • Blue & White theme",
		},
		Metrics: []Metric{
			{Label: "Projects", Value: "5+"},
			{Label: "Focus", Value: "NLP & ML"},
		},
		Skills: []SkillGroup{
			{
				Title: "Languages & Libraries",
				Items: []string{"Python", "NumPy, Pandas", "scikit-learn", "Transformers (Hugging Face)", "spaCy, NLTK"},
			},
			{
				Title: "Tools",
				Items: []string{"Streamlit", "Git", "Hugging Face Hub", "Jupyter"},
			},
		},
		Projects: []ProjectEntry{
			{
				Title:       "Yorùbá Sentiment Analyzer",
				Description: sentimentAnalyzer,
				TechStack:   "Python, Transformers, Hugging Face",
			},
			{
				Title:       "Abstractive Text Summarizer",
				Description: summarizer,
				TechStack:   "Python, PyTorch, Transformers",
			},
			{
				Title:       "Topic Modeling Dashboard",
				Description: topicModeling,
				TechStack:   "Python, scikit-learn, Streamlit",
			},
		},
		Experience: []ExperienceEntry{
			{Icon: "🏢", Text: "Elevvo Pathways — NLP Intern (Jun 2025 - Oct 2025)"},
			{Icon: "🎓", Text: "Federal University of Oye-Ekiti — B.Eng"},
		},
		ResearchInterests: researchInterests,
		ContactIntro:      contactIntro,
		Animations: map[string]string{
			"Home":       "https://assets9.lottiefiles.com/packages/lf20_yd8fbnml.json",
			"Skills":     "https://assets4.lottiefiles.com/packages/lf20_tfb3estd.json",
			"Projects":   "https://assets10.lottiefiles.com/packages/lf20_w51pcehl.json",
			"Experience": "https://assets9.lottiefiles.com/packages/lf20_ydo1amjm.json",
			"Contact":    "https://assets10.lottiefiles.com/packages/lf20_jcikwtux.json",
		},
	}
}
