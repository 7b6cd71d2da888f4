// Package fallback provides pre-built canned responses used when generation
// or validation fails. The canned plan represents a realistic analysis for a
// CS student targeting an ML Engineer role and is schema-complete by
// construction.
package fallback

import (
	"encoding/json"

	"github.com/jonathan/career-navigator/internal/types"
)

// Plan returns a deep copy of the canned plan document.
func Plan() *types.PlanDocument {
	doc := mockPlan
	return deepCopy(&doc)
}

// PlanMap returns the canned plan document in its free-form map
// representation, ready to be run through normalization like any other
// generation result.
func PlanMap() map[string]any {
	b, err := json.Marshal(mockPlan)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{}
	}
	return m
}

// Adaptation returns a deep copy of the canned adapted plan.
func Adaptation() *types.AdaptedPlan {
	plan := mockAdaptation
	b, err := json.Marshal(&plan)
	if err != nil {
		return &plan
	}
	var out types.AdaptedPlan
	if err := json.Unmarshal(b, &out); err != nil {
		return &plan
	}
	return &out
}

func deepCopy(doc *types.PlanDocument) *types.PlanDocument {
	b, err := json.Marshal(doc)
	if err != nil {
		return doc
	}
	var out types.PlanDocument
	if err := json.Unmarshal(b, &out); err != nil {
		return doc
	}
	return &out
}

var mockPlan = types.PlanDocument{
	SkillMap: types.SkillMap{
		Skills: []types.Skill{
			{Name: "Python", Level: "intermediate", Category: "technical"},
			{Name: "JavaScript", Level: "beginner", Category: "technical"},
			{Name: "HTML/CSS", Level: "intermediate", Category: "technical"},
			{Name: "Git", Level: "intermediate", Category: "tool"},
			{Name: "SQL", Level: "beginner", Category: "technical"},
			{Name: "React", Level: "beginner", Category: "technical"},
			{Name: "NumPy", Level: "beginner", Category: "tool"},
			{Name: "Communication", Level: "intermediate", Category: "soft"},
			{Name: "Problem Solving", Level: "intermediate", Category: "soft"},
			{Name: "Teamwork", Level: "advanced", Category: "soft"},
		},
		Strengths: []string{
			"Solid Python foundation with project experience",
			"Good collaborative skills from group projects",
			"Curiosity-driven learner with diverse project portfolio",
		},
		Weaknesses: []string{
			"No hands-on ML/DL project experience",
			"Weak mathematical foundations for ML (linear algebra, statistics)",
			"No experience with ML frameworks (PyTorch, TensorFlow, Scikit-learn)",
			"No exposure to ML ops or model deployment",
		},
	},
	RoleRequirements: types.RoleRequirements{
		CoreTechnical: []string{
			"Python (advanced)",
			"PyTorch or TensorFlow",
			"Scikit-learn",
			"Data preprocessing pipelines",
			"Model training & evaluation",
			"Feature engineering",
		},
		SupportingSkills: []string{
			"SQL for data querying",
			"Docker for containerization",
			"Git & version control",
			"REST API development",
			"Cloud platforms (AWS/GCP basics)",
		},
		TheoryMath: []string{
			"Linear algebra (vectors, matrices, eigenvalues)",
			"Probability & statistics",
			"Calculus (gradients, chain rule)",
			"Optimization (gradient descent)",
			"Information theory basics",
		},
		Tools: []string{
			"Jupyter Notebooks",
			"MLflow or W&B for experiment tracking",
			"Pandas & NumPy",
			"Hugging Face Transformers",
			"Matplotlib/Seaborn for visualization",
		},
		SoftSkills: []string{
			"Problem decomposition",
			"Technical writing & documentation",
			"Cross-functional collaboration",
			"Experiment design & hypothesis testing",
		},
		PortfolioExpectations: []string{
			"At least one end-to-end ML project",
			"Model deployed as a REST API",
			"Kaggle competition participation",
			"Reproduced a research paper result",
		},
	},
	GapAnalysis: types.GapAnalysis{
		Critical: []types.GapItem{
			{Skill: "PyTorch/TensorFlow", Reason: "Cannot build ML models without a deep learning framework — this is the #1 tool requirement for the role."},
			{Skill: "Scikit-learn", Reason: "Essential for classical ML tasks like classification, regression, and preprocessing."},
			{Skill: "Linear Algebra", Reason: "Foundational math for understanding how models work internally. Blocks deeper learning."},
			{Skill: "Model Training & Evaluation", Reason: "Core job function — must understand training loops, loss functions, and metrics."},
		},
		Important: []types.GapItem{
			{Skill: "Data Preprocessing", Reason: "80% of real ML work is data wrangling. Current SQL/Pandas skills are too shallow."},
			{Skill: "Probability & Statistics", Reason: "Needed for model evaluation, A/B testing, and understanding distributions."},
			{Skill: "Docker", Reason: "Standard for ML model deployment and reproducibility."},
			{Skill: "Experiment Tracking (MLflow/W&B)", Reason: "Professional ML workflows require systematic experimentation."},
		},
		NiceToHave: []types.GapItem{
			{Skill: "Cloud Platforms (AWS/GCP)", Reason: "Useful for deployment but not critical at entry level."},
			{Skill: "Hugging Face Transformers", Reason: "Valuable for NLP roles but can be learned on the job."},
			{Skill: "Information Theory", Reason: "Deepens understanding but not immediately required."},
		},
	},
	Roadmap: types.Roadmap{
		Days: []types.DayPlan{
			{Day: 1, Objective: "Python for ML: NumPy mastery", Resource: "NumPy official quickstart + freeCodeCamp NumPy tutorial", Task: "Complete 20 NumPy array manipulation exercises", Output: "Jupyter notebook with exercises", Hours: 3},
			{Day: 2, Objective: "Pandas for data wrangling", Resource: "Kaggle Pandas micro-course", Task: "Load, clean, and analyze a CSV dataset", Output: "Cleaned dataset + analysis notebook", Hours: 3},
			{Day: 3, Objective: "Data visualization fundamentals", Resource: "Matplotlib & Seaborn tutorial (Real Python)", Task: "Create 5 different chart types from a dataset", Output: "Visualization notebook", Hours: 2.5},
			{Day: 4, Objective: "Linear algebra: Vectors & matrices", Resource: "3Blue1Brown Essence of Linear Algebra (Ep 1-4)", Task: "Hand-solve 10 matrix operations, implement in NumPy", Output: "Math notebook with NumPy verification", Hours: 3},
			{Day: 5, Objective: "Linear algebra: Transformations & eigenvalues", Resource: "3Blue1Brown (Ep 5-8) + Khan Academy exercises", Task: "Visualize 2D transformations with matplotlib", Output: "Transformation visualization script", Hours: 3},
			{Day: 6, Objective: "Statistics fundamentals", Resource: "StatQuest: Histograms, Mean, Variance, Std Dev", Task: "Compute stats on a real dataset, interpret results", Output: "Statistical analysis notebook", Hours: 2.5},
			{Day: 7, Objective: "Week 1 review + mini-project", Resource: "Kaggle Titanic dataset", Task: "EDA on Titanic: clean, visualize, find patterns", Output: "Complete EDA notebook (portfolio piece #1)", Hours: 4},
			{Day: 8, Objective: "Intro to Scikit-learn", Resource: "Scikit-learn official tutorial: Getting Started", Task: "Train your first classifier on Iris dataset", Output: "Working classification notebook", Hours: 3},
			{Day: 9, Objective: "Supervised learning: Regression", Resource: "Scikit-learn regression tutorial + StatQuest", Task: "Build a housing price predictor", Output: "Regression model with evaluation metrics", Hours: 3},
			{Day: 10, Objective: "Supervised learning: Classification", Resource: "Scikit-learn classification guide", Task: "Build a spam classifier with multiple algorithms", Output: "Comparison notebook with accuracy scores", Hours: 3},
			{Day: 11, Objective: "Model evaluation & validation", Resource: "StatQuest: Cross Validation, Confusion Matrix, ROC", Task: "Evaluate previous models with proper metrics", Output: "Evaluation report notebook", Hours: 2.5},
			{Day: 12, Objective: "Feature engineering", Resource: "Kaggle Feature Engineering micro-course", Task: "Engineer features for Titanic dataset, improve accuracy", Output: "Improved model with feature engineering", Hours: 3},
			{Day: 13, Objective: "Probability for ML", Resource: "StatQuest: Bayes Theorem, Distributions", Task: "Implement Naive Bayes from scratch", Output: "Custom NB implementation + comparison with sklearn", Hours: 3},
			{Day: 14, Objective: "Week 2 review + Kaggle submission", Resource: "Kaggle Titanic competition", Task: "Submit best Titanic model to Kaggle", Output: "Kaggle submission + score screenshot", Hours: 4},
			{Day: 15, Objective: "Neural networks: Concepts", Resource: "3Blue1Brown Neural Networks series (Ep 1-2)", Task: "Implement a perceptron from scratch in NumPy", Output: "Working perceptron code", Hours: 3},
			{Day: 16, Objective: "Intro to PyTorch", Resource: "PyTorch official: 60-minute blitz", Task: "Build and train a simple neural net in PyTorch", Output: "PyTorch training script", Hours: 3.5},
			{Day: 17, Objective: "PyTorch: CNNs", Resource: "PyTorch CNN tutorial", Task: "Train a CNN on MNIST/Fashion-MNIST", Output: "CNN achieving >95% accuracy", Hours: 3},
			{Day: 18, Objective: "Calculus for backpropagation", Resource: "3Blue1Brown: Backpropagation calculus", Task: "Manually compute gradients for a small network", Output: "Gradient computation notebook", Hours: 2.5},
			{Day: 19, Objective: "Transfer learning", Resource: "PyTorch transfer learning tutorial", Task: "Fine-tune a pretrained model on custom image dataset", Output: "Transfer learning notebook", Hours: 3},
			{Day: 20, Objective: "Flagship project: Start", Resource: "Project planning + dataset collection", Task: "Define problem, collect data, set up project repo", Output: "GitHub repo with README and data folder", Hours: 3},
			{Day: 21, Objective: "Week 3 review + flagship project EDA", Resource: "Your collected dataset", Task: "Complete EDA and preprocessing for flagship project", Output: "EDA notebook in project repo", Hours: 4},
			{Day: 22, Objective: "Flagship project: baseline model", Resource: "Scikit-learn + PyTorch", Task: "Train baseline model, establish benchmark metrics", Output: "Baseline model with evaluation", Hours: 3.5},
			{Day: 23, Objective: "Flagship project: improved model", Resource: "Hyperparameter tuning guides", Task: "Improve model with feature engineering + tuning", Output: "Improved model beating baseline", Hours: 3.5},
			{Day: 24, Objective: "Model deployment: Flask/FastAPI", Resource: "FastAPI ML serving tutorial", Task: "Wrap your model in a REST API", Output: "Runnable API endpoint", Hours: 3},
			{Day: 25, Objective: "Docker basics for ML", Resource: "Docker official getting started", Task: "Containerize your ML API", Output: "Dockerfile + docker-compose.yml", Hours: 3},
			{Day: 26, Objective: "Flagship project: Frontend", Resource: "Streamlit or Gradio tutorial", Task: "Build a simple UI for your ML model", Output: "Interactive demo app", Hours: 3},
			{Day: 27, Objective: "Experiment tracking with MLflow", Resource: "MLflow quickstart guide", Task: "Log experiments for your flagship project", Output: "MLflow dashboard with tracked runs", Hours: 2.5},
			{Day: 28, Objective: "Week 4 review + flagship project polish", Resource: "Code review best practices", Task: "Clean code, add docstrings, write tests", Output: "Production-quality codebase", Hours: 4},
			{Day: 29, Objective: "Portfolio + documentation", Resource: "Technical writing guides", Task: "Write detailed README, add architecture diagram", Output: "Portfolio-ready project documentation", Hours: 3},
			{Day: 30, Objective: "Final review + LinkedIn update", Resource: "LinkedIn optimization guide", Task: "Update LinkedIn with new skills, publish project post", Output: "Updated profile + project showcase post", Hours: 2.5},
		},
		WeeklyMilestones: []types.WeeklyMilestone{
			{Week: 1, Milestone: "Data science foundations: NumPy, Pandas, visualization, and linear algebra. Completed Titanic EDA.", SkillsGained: []string{"NumPy", "Pandas", "Matplotlib", "Linear Algebra basics", "EDA"}},
			{Week: 2, Milestone: "Classical ML mastery: Built classifiers, regressors, and submitted to Kaggle.", SkillsGained: []string{"Scikit-learn", "Supervised learning", "Model evaluation", "Feature engineering", "Probability"}},
			{Week: 3, Milestone: "Deep learning fundamentals: Built neural networks in PyTorch, started flagship project.", SkillsGained: []string{"PyTorch", "CNNs", "Transfer learning", "Backpropagation", "Neural network architecture"}},
			{Week: 4, Milestone: "Production ML: Deployed model as API, containerized, tracked experiments. Portfolio-ready project complete.", SkillsGained: []string{"Model deployment", "Docker", "MLflow", "FastAPI", "Technical writing"}},
		},
	},
	FlagshipProject: types.FlagshipProject{
		Title:            "MedScan: AI-Powered Medical Image Classifier",
		ProblemStatement: "Build an end-to-end ML system that classifies medical images (e.g., chest X-rays) to detect pneumonia, providing a web interface for healthcare workers in low-resource settings.",
		TechStack:        []string{"Python", "PyTorch", "FastAPI", "Streamlit", "Docker", "MLflow"},
		WeeklyFeatures: []types.WeeklyFeature{
			{Week: 1, Feature: "Data pipeline", Description: "Download and preprocess the ChestX-ray14 dataset. Build data loaders, augmentation pipeline, and train/val/test splits."},
			{Week: 2, Feature: "Baseline classifier", Description: "Train a baseline CNN and a fine-tuned ResNet-18. Compare performance with proper metrics (AUC, sensitivity, specificity)."},
			{Week: 3, Feature: "Model optimization", Description: "Hyperparameter tuning, learning rate scheduling, and ensemble methods. Add Grad-CAM visualizations for explainability."},
			{Week: 4, Feature: "Deployment & demo", Description: "REST API with FastAPI, Streamlit frontend for image upload + prediction, Dockerized for easy deployment. Full documentation."},
		},
		PortfolioQuality: "This project demonstrates end-to-end ML skills: data engineering, model development, explainability (Grad-CAM), deployment, and containerization. It addresses a real healthcare problem, making it compelling for interviews and resume.",
	},
	Reasoning: "The student has solid Python basics and good collaboration skills, but lacks the core ML stack entirely. The 30-day plan prioritizes math foundations and hands-on framework experience in weeks 1-2, progresses to deep learning in week 3, and culminates in a deployment-ready portfolio project in week 4. This path addresses all critical gaps while building on existing Python strength.",
}

var mockAdaptation = types.AdaptedPlan{
	AdaptationReasoning: "The student missed 7 days (days 8-14), losing the entire classical ML week. Since deep learning requires understanding of basic ML concepts, we need to compress the essential Scikit-learn content into the first 2 remaining days before proceeding with PyTorch. The flagship project scope is reduced to use a simpler model architecture.",
	AdaptedRoadmap: types.Roadmap{
		Days: []types.DayPlan{
			{Day: 15, Objective: "Crash course: Scikit-learn essentials", Resource: "Scikit-learn crash course (Data School YouTube)", Task: "Train classifier + regressor on Iris and Boston datasets", Output: "Two working model notebooks", Hours: 4},
			{Day: 16, Objective: "Model evaluation crash course", Resource: "StatQuest: Cross Validation + Confusion Matrix", Task: "Evaluate models with proper metrics, understand overfitting", Output: "Evaluation notebook with cross-validation", Hours: 3},
			{Day: 17, Objective: "Neural networks: Concepts + PyTorch intro", Resource: "3Blue1Brown NN series + PyTorch 60-min blitz", Task: "Build first neural net in PyTorch", Output: "Working PyTorch training script", Hours: 4},
			{Day: 18, Objective: "PyTorch: CNNs on MNIST", Resource: "PyTorch CNN tutorial", Task: "Train CNN on Fashion-MNIST", Output: "CNN achieving >90% accuracy", Hours: 3},
			{Day: 19, Objective: "Transfer learning (compressed)", Resource: "PyTorch transfer learning tutorial", Task: "Fine-tune ResNet on a small custom dataset", Output: "Transfer learning notebook", Hours: 3},
			{Day: 20, Objective: "Flagship project: Setup + EDA", Resource: "Chest X-ray dataset", Task: "Set up repo, download data, complete EDA", Output: "GitHub repo with EDA notebook", Hours: 4},
			{Day: 21, Objective: "Flagship project: Baseline model", Resource: "PyTorch + transfer learning", Task: "Train baseline model, evaluate", Output: "Baseline with initial metrics", Hours: 4},
			{Day: 22, Objective: "Flagship project: Model improvement", Resource: "Fine-tuning techniques", Task: "Improve model performance, add Grad-CAM", Output: "Improved model + explainability", Hours: 4},
			{Day: 23, Objective: "Flagship project: API deployment", Resource: "FastAPI tutorial", Task: "Build REST API for model predictions", Output: "Working API endpoint", Hours: 3},
			{Day: 24, Objective: "Flagship project: Simple frontend", Resource: "Streamlit crash course", Task: "Build image upload + prediction UI", Output: "Working Streamlit app", Hours: 3},
			{Day: 25, Objective: "Docker + documentation", Resource: "Docker basics for Python", Task: "Containerize app, write README", Output: "Dockerized project with docs", Hours: 3},
			{Day: 26, Objective: "Portfolio polish", Resource: "Technical writing guide", Task: "Add architecture diagram, clean code, add tests", Output: "Portfolio-ready codebase", Hours: 3},
			{Day: 27, Objective: "Kaggle quick submission", Resource: "Kaggle getting started competition", Task: "Submit a Kaggle entry using your new skills", Output: "Kaggle submission + score", Hours: 2.5},
			{Day: 28, Objective: "Fill remaining gaps: Statistics review", Resource: "StatQuest playlist (key videos)", Task: "Watch and summarize 5 key statistics concepts", Output: "Study notes", Hours: 2},
			{Day: 29, Objective: "LinkedIn + GitHub profile update", Resource: "LinkedIn optimization tips", Task: "Update profiles, publish project showcase", Output: "Updated online presence", Hours: 2},
			{Day: 30, Objective: "Final review and next steps planning", Resource: "Self-assessment", Task: "Review all projects, identify areas for continued learning", Output: "Personal learning roadmap for month 2", Hours: 2},
		},
		WeeklyMilestones: []types.WeeklyMilestone{
			{Week: 3, Milestone: "Recovered ML fundamentals + started deep learning with PyTorch. Compressed weeks 2-3 essentials.", SkillsGained: []string{"Scikit-learn basics", "Model evaluation", "PyTorch", "CNNs", "Transfer learning"}},
			{Week: 4, Milestone: "Completed flagship project with deployment. Scope reduced but still portfolio-worthy.", SkillsGained: []string{"FastAPI", "Streamlit", "Docker", "End-to-end ML project", "Portfolio development"}},
		},
	},
	AdaptedProject: types.AdaptedProject{
		Changes: "Reduced from 4-week progressive build to 2-week intensive build. Dropped ensemble methods and advanced hyperparameter tuning. Kept core value: deployed ML model with explainability.",
		WeeklyFeatures: []types.WeeklyFeature{
			{Week: 3, Feature: "Data + Model", Description: "Combined EDA, baseline, and improvement into one intensive week. Focus on transfer learning rather than training from scratch."},
			{Week: 4, Feature: "Deploy + Polish", Description: "API, frontend, Docker, and documentation. Simplified UI but still production-quality."},
		},
	},
	Motivation: "Missing a week feels like a setback, but you've already built strong Python and data foundations. The adapted plan compresses the essentials without cutting corners on what matters most — by day 30, you'll still have a deployed ML project on your resume. Let's go! 🚀",
}
