package questions

import "trivia-quiz-service/internal/domain"

// fallbackQuestions is the built-in mixed-category set substituted whenever
// the remote provider fails. Candidate lists start with the correct answer;
// the supplier shuffles them like any remote batch.
func fallbackQuestions() []domain.QuestionRecord {
	return []domain.QuestionRecord{
		{Prompt: "What is the capital of France?", CorrectAnswer: "Paris", CandidateAnswers: []string{"Paris", "London", "Berlin", "Madrid"}, Category: "Geography", Difficulty: "easy"},
		{Prompt: "Which planet is known as the Red Planet?", CorrectAnswer: "Mars", CandidateAnswers: []string{"Mars", "Venus", "Jupiter", "Saturn"}, Category: "Science", Difficulty: "easy"},
		{Prompt: "Who wrote 'Romeo and Juliet'?", CorrectAnswer: "William Shakespeare", CandidateAnswers: []string{"William Shakespeare", "Charles Dickens", "Jane Austen", "Mark Twain"}, Category: "Literature", Difficulty: "medium"},
		{Prompt: "What is the largest ocean on Earth?", CorrectAnswer: "Pacific Ocean", CandidateAnswers: []string{"Pacific Ocean", "Atlantic Ocean", "Indian Ocean", "Arctic Ocean"}, Category: "Geography", Difficulty: "easy"},
		{Prompt: "In which year did World War II end?", CorrectAnswer: "1945", CandidateAnswers: []string{"1945", "1944", "1946", "1943"}, Category: "History", Difficulty: "medium"},
		{Prompt: "What is the chemical symbol for gold?", CorrectAnswer: "Au", CandidateAnswers: []string{"Au", "Ag", "Fe", "Cu"}, Category: "Science", Difficulty: "medium"},
		{Prompt: "Which programming language is known for web development?", CorrectAnswer: "JavaScript", CandidateAnswers: []string{"JavaScript", "Python", "C++", "Java"}, Category: "Technology", Difficulty: "easy"},
		{Prompt: "What is the smallest prime number?", CorrectAnswer: "2", CandidateAnswers: []string{"2", "1", "3", "5"}, Category: "Mathematics", Difficulty: "easy"},
		{Prompt: "Who painted the Mona Lisa?", CorrectAnswer: "Leonardo da Vinci", CandidateAnswers: []string{"Leonardo da Vinci", "Pablo Picasso", "Vincent van Gogh", "Michelangelo"}, Category: "Art", Difficulty: "easy"},
		{Prompt: "What is the speed of light in vacuum (approximately)?", CorrectAnswer: "300,000 km/s", CandidateAnswers: []string{"300,000 km/s", "150,000 km/s", "450,000 km/s", "200,000 km/s"}, Category: "Physics", Difficulty: "hard"},
		{Prompt: "Which country is home to the kangaroo?", CorrectAnswer: "Australia", CandidateAnswers: []string{"Australia", "New Zealand", "South Africa", "Brazil"}, Category: "Geography", Difficulty: "easy"},
		{Prompt: "What is the largest mammal in the world?", CorrectAnswer: "Blue Whale", CandidateAnswers: []string{"Blue Whale", "Elephant", "Giraffe", "Polar Bear"}, Category: "Biology", Difficulty: "easy"},
		{Prompt: "In which year was the first iPhone released?", CorrectAnswer: "2007", CandidateAnswers: []string{"2007", "2005", "2008", "2006"}, Category: "Technology", Difficulty: "medium"},
		{Prompt: "What is the currency of Japan?", CorrectAnswer: "Yen", CandidateAnswers: []string{"Yen", "Won", "Yuan", "Dollar"}, Category: "Economics", Difficulty: "easy"},
		{Prompt: "Which element has the atomic number 1?", CorrectAnswer: "Hydrogen", CandidateAnswers: []string{"Hydrogen", "Helium", "Oxygen", "Carbon"}, Category: "Chemistry", Difficulty: "medium"},
	}
}
