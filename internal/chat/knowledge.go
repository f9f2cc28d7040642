package chat

import (
	"fmt"
	"os"
)

// defaultKnowledge is the fixed biographical text both chat strategies are
// grounded in. Deployments can swap it via KNOWLEDGE_FILE without rebuilding.
const defaultKnowledge = `# About Rahul Chauhan

Rahul Chauhan is an AI & Backend Engineer with strong knowledge in Generative AI,
RAG (Retrieval-Augmented Generation), and AI Agents. He is proficient in Machine
Learning, Deep Learning, and NLP with hands-on experience building intelligent
systems using FastAPI and Django. He is a 4x Hackathon Winner.

## Education
- B.Tech in Artificial Intelligence and Data Science, Thakur College of
  Engineering and Technology, Mumbai. CGPA 9.41/10, graduated May 2025.
- HSC from Sardar Vallabhbhai Patel Vidyalaya: 84.83%.

## Skills
- Programming: Python, SQL, C++
- AI/ML: Machine Learning, Deep Learning, NLP, Generative AI, RAG, Agentic AI
- Frameworks: FastAPI, Django, Flask, Streamlit
- AI Tools: LangChain, LangGraph, TensorFlow, Keras, Scikit-learn, NLTK
- Data: Pandas, Numpy, MySQL, MongoDB
- Tools: Docker, Git, MLflow, n8n, MCP

## Work Experience
1. Edunet Foundation (AICTE & Shell India), AI & Data Analytics Intern
   (Jan 2025 - Feb 2025): Crop & Fertilizer Recommendation System with 92%
   accuracy over 10K+ agricultural records.
2. CodSoft, Machine Learning Intern (Dec 2023 - Jan 2024): Django web app for
   real-time ML predictions with TensorFlow and Scikit-learn.

## Featured Projects
1. CareerVision.ai: career prediction platform with real-time listings via the
   Adzuna API. Django, Machine Learning, Python.
2. Advanced AI Chatbot: Groq Llama-3.1-8B with 95% tool accuracy and SQLite
   chat persistence. LangGraph, LangChain, Streamlit.
3. Car Price Prediction API: FastAPI REST API with 85%+ accuracy and Redis
   caching. FastAPI, Docker, Redis, Prometheus.
4. RecipePro.ai: AI recipe generator. Django, LangChain, Gemini.
5. StockVision: real-time stock trend forecasting with LSTM models.
6. RAG Application with LangChain: document querying.
7. Web Scraper using LangChain: RAG-powered QA over web content.
8. Fake News Detection, Credit Card Fraud Detection, Parkinsons Detection.

## Certifications
- Python 101 for Data Science (IBM), Basics of DSA (Simplilearn),
  Flask Python (Great Learning), Data Science Masters 2.0 (PW Skills, ongoing).

## Achievements
- 4x Hackathon Winner; multiple workshops and technical events.

## Contact
- Email: rahulchauhan4708@gmail.com
- GitHub: https://github.com/Rahul4112002
- LinkedIn: https://linkedin.com/in/rahul-chauhan-932522230
- Location: Mumbai, Maharashtra, India`

// LoadKnowledge returns the knowledge base text, preferring the file at path
// when one is configured.
func LoadKnowledge(path string) (string, error) {
	if path == "" {
		return defaultKnowledge, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read knowledge file: %w", err)
	}
	return string(data), nil
}
