package skills

import "strings"

// vocabulary is the fixed set of skills recognized by substring match.
// Order is significant: lookups return matches in vocabulary order so
// identical inputs always produce identical results.
var vocabulary = []string{
	"Python", "Java", "JavaScript", "TypeScript", "React", "Next.js", "Vue", "Angular",
	"Node.js", "Express", "FastAPI", "Django", "Flask", "Spring Boot",
	"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Terraform",
	"Git", "CI/CD", "Jenkins", "GitHub Actions",
	"Machine Learning", "Deep Learning", "NLP", "TensorFlow", "PyTorch", "Scikit-learn",
	"Data Science", "Pandas", "NumPy", "Matplotlib",
	"Communication", "Leadership", "Teamwork", "Problem Solving", "Agile", "Scrum",
}

// Extract returns the subset of the known vocabulary present in text,
// matched case-insensitively as substrings.
func Extract(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, 8)
	for _, skill := range vocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}
