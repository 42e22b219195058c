package utils

import (
	"math"

	"pharmacy-chatbot-backend/models"
)

// NaiveBayes is a multinomial bag-of-words classifier with Laplace smoothing.
// Train it fully before sharing it; Classify is safe for concurrent use once
// training is done.
type NaiveBayes struct {
	docCounts  map[models.MessageIntent]int
	wordCounts map[models.MessageIntent]map[string]int
	wordTotals map[models.MessageIntent]int
	vocabulary map[string]struct{}
	totalDocs  int
}

func NewNaiveBayes() *NaiveBayes {
	return &NaiveBayes{
		docCounts:  make(map[models.MessageIntent]int),
		wordCounts: make(map[models.MessageIntent]map[string]int),
		wordTotals: make(map[models.MessageIntent]int),
		vocabulary: make(map[string]struct{}),
	}
}

// Train adds one labelled document.
func (nb *NaiveBayes) Train(text string, label models.MessageIntent) {
	nb.totalDocs++
	nb.docCounts[label]++

	counts, ok := nb.wordCounts[label]
	if !ok {
		counts = make(map[string]int)
		nb.wordCounts[label] = counts
	}

	for _, token := range Tokenize(text) {
		counts[token]++
		nb.wordTotals[label]++
		nb.vocabulary[token] = struct{}{}
	}
}

// Classify returns the most probable label and the log-probability of every
// trained label. Ties go to the label listed first in models.Intents.
func (nb *NaiveBayes) Classify(text string) (models.MessageIntent, map[models.MessageIntent]float64) {
	scores := make(map[models.MessageIntent]float64, len(nb.docCounts))
	if nb.totalDocs == 0 {
		return models.IntentGeneral, scores
	}

	tokens := Tokenize(text)
	vocab := float64(len(nb.vocabulary))

	best := models.IntentGeneral
	bestScore := math.Inf(-1)

	for _, label := range models.Intents {
		docs, trained := nb.docCounts[label]
		if !trained {
			continue
		}

		score := math.Log(float64(docs) / float64(nb.totalDocs))
		denominator := float64(nb.wordTotals[label]) + vocab
		for _, token := range tokens {
			score += math.Log((float64(nb.wordCounts[label][token]) + 1) / denominator)
		}

		scores[label] = score
		if score > bestScore {
			best, bestScore = label, score
		}
	}

	return best, scores
}

// NewTrainedNaiveBayes returns a classifier trained on the built-in phrase set.
func NewTrainedNaiveBayes() *NaiveBayes {
	nb := NewNaiveBayes()
	for _, doc := range trainingPhrases {
		nb.Train(doc.text, doc.intent)
	}
	return nb
}

type trainingDoc struct {
	text   string
	intent models.MessageIntent
}

var trainingPhrases = []trainingDoc{
	{"how many items are in stock", models.IntentStock},
	{"show me the inventory", models.IntentStock},
	{"which medicines are low in stock", models.IntentStock},
	{"what is expiring soon", models.IntentStock},
	{"where is paracetamol located", models.IntentStock},
	{"which rack has amoxicillin", models.IntentStock},
	{"most sold medicines", models.IntentStock},
	{"top selling products", models.IntentStock},
	{"is ibuprofen available", models.IntentStock},

	{"who are our best customers", models.IntentCustomer},
	{"most visited customer", models.IntentCustomer},
	{"customer loyalty points", models.IntentCustomer},
	{"how many customers do we have", models.IntentCustomer},
	{"list regular clients", models.IntentCustomer},

	{"what are today's sales", models.IntentSales},
	{"show recent sales", models.IntentSales},
	{"total revenue this month", models.IntentSales},
	{"how much did we earn", models.IntentSales},
	{"list last transactions", models.IntentSales},

	{"can i take aspirin with warfarin", models.IntentInteraction},
	{"interaction between ibuprofen and lisinopril", models.IntentInteraction},
	{"is it safe to combine these drugs", models.IntentInteraction},
	{"drug interactions check", models.IntentInteraction},
	{"can these be taken together", models.IntentInteraction},

	{"symptoms of diabetes", models.IntentMedical},
	{"how to treat hypertension", models.IntentMedical},
	{"what causes migraine", models.IntentMedical},
	{"i have fever and headache", models.IntentMedical},
	{"treatment for asthma", models.IntentMedical},
	{"side effects of metformin", models.IntentMedical},

	{"hello", models.IntentGeneral},
	{"hi there", models.IntentGeneral},
	{"help me", models.IntentGeneral},
	{"what can you do", models.IntentGeneral},
	{"thank you", models.IntentGeneral},
	{"goodbye", models.IntentGeneral},
}
