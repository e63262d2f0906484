package devseed

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// Content generation constants.
const (
	minParagraphs     = 2
	maxExtraPara      = 6 // 2-7 paragraphs total
	minSentences      = 2
	maxExtraSent      = 4 // 2-5 sentences total
	minWords          = 6
	maxExtraWords     = 10 // 6-15 words total
	minListItems      = 2
	maxExtraListItems = 4 // 2-5 items total
	headingChance     = 0.3
	listChance        = 0.25
	quoteChance       = 0.15
	emphasisChance    = 0.2
)

var groupNames = []string{
	"Editors", "Moderators", "Writers", "Readers", "Photographers",
	"Travellers", "Gardeners", "Cooks", "Musicians", "Volunteers",
}

// generateBody creates a random Markdown post body.
func generateBody(faker *gofakeit.Faker) string {
	numParagraphs := minParagraphs + faker.IntN(maxExtraPara)
	blocks := make([]string, 0, numParagraphs+2) //nolint:mnd // room for a heading and a list

	for i := range numParagraphs {
		if i > 0 && faker.Float64() < headingChance {
			blocks = append(blocks, "## "+titleCase(faker.Noun())+" "+faker.Noun())
		}
		switch roll := faker.Float64(); {
		case roll < listChance:
			blocks = append(blocks, generateList(faker))
		case roll < listChance+quoteChance:
			blocks = append(blocks, "> "+faker.Sentence(minWords+faker.IntN(maxExtraWords)))
		default:
			blocks = append(blocks, generateParagraph(faker))
		}
	}
	return strings.Join(blocks, "\n\n")
}

func generateParagraph(faker *gofakeit.Faker) string {
	numSentences := minSentences + faker.IntN(maxExtraSent)
	sentences := make([]string, numSentences)
	for i := range numSentences {
		sentence := faker.Sentence(minWords + faker.IntN(maxExtraWords))
		if faker.Float64() < emphasisChance {
			sentence = "**" + strings.TrimSuffix(sentence, ".") + "**."
		}
		sentences[i] = sentence
	}
	return strings.Join(sentences, " ")
}

func generateList(faker *gofakeit.Faker) string {
	numItems := minListItems + faker.IntN(maxExtraListItems)
	items := make([]string, numItems)
	for i := range numItems {
		items[i] = "- " + titleCase(faker.Adjective()) + " " + faker.Noun()
	}
	return strings.Join(items, "\n")
}

func generateTitle(faker *gofakeit.Faker) string {
	patterns := []func(*gofakeit.Faker) string{
		func(f *gofakeit.Faker) string { return fmt.Sprintf("The %s %s", f.Adjective(), f.Noun()) },
		func(f *gofakeit.Faker) string { return fmt.Sprintf("Notes on %s", f.Noun()) },
		func(f *gofakeit.Faker) string {
			return fmt.Sprintf("%s and %s", titleCase(f.Noun()), titleCase(f.Noun()))
		},
		func(f *gofakeit.Faker) string { return fmt.Sprintf("Why I %s %s", f.Verb(), f.Noun()) },
		func(f *gofakeit.Faker) string {
			return fmt.Sprintf("%s in the %s", titleCase(f.Noun()), f.Adjective())
		},
	}
	return patterns[faker.IntN(len(patterns))](faker)
}

func titleCase(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
