package keyword

// englishStopWords — слова, не несущие смысла для кросс-референса отчетов:
// артикли, местоимения, предлоги, вспомогательные и самые частотные глаголы.
var englishStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am",
	"an", "and", "any", "are", "aren", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"cannot", "cant", "come", "could", "couldn", "did", "didn", "do", "does",
	"doesn", "doing", "don", "done", "down", "during", "each", "few", "find",
	"fix", "for", "from", "further", "get", "go", "going", "got", "had",
	"hadn", "has", "hasn", "have", "haven", "having", "he", "her", "here",
	"hers", "herself", "him", "himself", "his", "how", "i", "if", "in",
	"into", "is", "isn", "it", "its", "itself", "just", "keep", "let", "like",
	"look", "make", "me", "more", "most", "much", "must", "mustn", "my",
	"myself", "need", "new", "no", "nor", "not", "now", "of", "off", "on",
	"once", "only", "or", "other", "ought", "our", "ours", "ourselves", "out",
	"over", "own", "put", "same", "see", "shan", "she", "should", "shouldn",
	"so", "some", "still", "such", "take", "than", "that", "the", "their",
	"theirs", "them", "themselves", "then", "there", "these", "they", "this",
	"those", "through", "to", "today", "too", "try", "under", "until", "up",
	"use", "used", "very", "want", "was", "wasn", "we", "well", "were",
	"weren", "what", "when", "where", "which", "while", "who", "whom", "why",
	"will", "with", "won", "work", "would", "wouldn", "yesterday", "yet",
	"you", "your", "yours", "yourself", "yourselves",
}
