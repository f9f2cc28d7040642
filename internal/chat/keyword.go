package chat

import (
	"context"
	"strings"
)

// rule maps trigger keywords to a canned reply drawn from the knowledge base.
// Rules are checked in order; the first hit wins.
type rule struct {
	keywords []string
	reply    string
}

// KeywordResponder answers from a fixed rule table. It needs no network and
// is the default strategy.
type KeywordResponder struct {
	rules        []rule
	defaultReply string
}

func NewKeywordResponder() *KeywordResponder {
	return &KeywordResponder{
		rules: []rule{
			{
				keywords: []string{"skill", "technology", "tech stack"},
				reply: "Rahul's core skills cover AI/ML (Machine Learning, Deep Learning, NLP, " +
					"Generative AI, RAG, Agentic AI), frameworks like FastAPI, Django, Flask and " +
					"Streamlit, AI tools such as LangChain, LangGraph, TensorFlow and Scikit-learn, " +
					"plus Python, SQL, Pandas, MySQL, MongoDB, Docker and Git. He's particularly " +
					"strong in building intelligent systems with GenAI and RAG.",
			},
			{
				keywords: []string{"langchain", "rag", "retrieval"},
				reply: "RAG and LangChain are Rahul's specialty: an advanced AI chatbot with " +
					"LangGraph and multi-tool integration, a RAG application for document querying, " +
					"a LangChain web scraper for RAG-powered QA, and RecipePro.ai built on Google " +
					"Gemini.",
			},
			{
				keywords: []string{"project", "built", "developed"},
				reply: "Rahul has built 14+ projects: GenAI and RAG systems (chatbots, recipe " +
					"generators, document QA), machine learning applications (career prediction, " +
					"fraud detection, disease detection), deep learning (LSTM stock forecasting) " +
					"and full-stack Django/FastAPI apps. See https://github.com/Rahul4112002.",
			},
			{
				keywords: []string{"experience", "intern", "work"},
				reply: "Rahul interned at Edunet Foundation (AICTE & Shell India) as an AI & Data " +
					"Analytics Intern, building a crop and fertilizer recommendation system with " +
					"92% accuracy, and at CodSoft as a Machine Learning Intern building a Django " +
					"app for real-time ML predictions. He is also a 4x hackathon winner.",
			},
			{
				keywords: []string{"education", "degree", "college", "university", "cgpa"},
				reply: "Rahul holds a B.Tech in Artificial Intelligence and Data Science from " +
					"Thakur College of Engineering and Technology, Mumbai, with a 9.41/10 CGPA, " +
					"graduated May 2025.",
			},
			{
				keywords: []string{"certif", "course"},
				reply: "Certifications: Python 101 for Data Science (IBM), Basics of DSA " +
					"(Simplilearn), Flask Python (Great Learning), and Data Science Masters 2.0 " +
					"(PW Skills, in progress).",
			},
			{
				keywords: []string{"django", "fastapi", "backend"},
				reply: "Rahul builds production backends with FastAPI (car price prediction API " +
					"with Redis caching, Docker and Prometheus) and Django (CareerVision.ai, " +
					"RecipePro.ai, StockVision), all with ML models integrated.",
			},
			{
				keywords: []string{"hackathon", "achievement", "win"},
				reply: "Rahul is a 4x hackathon winner, with wins across multiple technical " +
					"events and workshops.",
			},
			{
				keywords: []string{"contact", "email", "reach", "phone"},
				reply: "You can reach Rahul at rahulchauhan4708@gmail.com, on GitHub at " +
					"github.com/Rahul4112002, or on LinkedIn at " +
					"linkedin.com/in/rahul-chauhan-932522230. He is based in Mumbai, India.",
			},
		},
		defaultReply: "I can tell you about Rahul's skills, projects, work experience, " +
			"education, certifications, hackathon wins, or how to contact him. " +
			"What would you like to know?",
	}
}

func (k *KeywordResponder) Reply(_ context.Context, message string) (string, error) {
	lower := strings.ToLower(message)
	for _, r := range k.rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply, nil
			}
		}
	}
	return k.defaultReply, nil
}
