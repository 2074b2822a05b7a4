package keyword_test

import (
	"testing"

	"standup-report-service/internal/keyword"

	"github.com/stretchr/testify/assert"
)

func TestExtract_RemovesStopWordsAndLowercases(t *testing.T) {
	e := keyword.NewStopWordExtractor()

	keywords := e.Extract([]string{"this is a testToday"}, "this is a testPb")

	assert.Equal(t, []string{"testtoday", "testpb"}, keywords)
}

func TestExtract_DeduplicatesKeepingFirstOccurrence(t *testing.T) {
	e := keyword.NewStopWordExtractor()

	keywords := e.Extract([]string{"deploy service", "service deploy again"}, "deploy")

	assert.Equal(t, []string{"deploy", "service"}, keywords)
}

func TestExtract_StripsPunctuation(t *testing.T) {
	e := keyword.NewStopWordExtractor()

	keywords := e.Extract([]string{"fix login-bug, then deploy!"}, "")

	assert.Equal(t, []string{"login", "bug", "deploy"}, keywords)
}

func TestExtract_EmptyProblemsIsValid(t *testing.T) {
	e := keyword.NewStopWordExtractor()

	keywords := e.Extract([]string{"deploy the service"}, "")

	assert.Equal(t, []string{"deploy", "service"}, keywords)
}

func TestExtract_AllStopWordsYieldEmptySet(t *testing.T) {
	e := keyword.NewStopWordExtractor()

	keywords := e.Extract([]string{"i will do it"}, "cannot do this")

	assert.Empty(t, keywords)
}

func TestExtract_IsDeterministic(t *testing.T) {
	e := keyword.NewStopWordExtractor()

	today := []string{"fix login bug"}
	problems := "cannot deploy"

	first := e.Extract(today, problems)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Extract(today, problems))
	}
	assert.Equal(t, []string{"login", "bug", "deploy"}, first)
}

func TestExtract_CustomStopWordList(t *testing.T) {
	e := keyword.NewStopWordExtractorWithList([]string{"и", "на"})

	keywords := e.Extract([]string{"деплой и релиз на стейдж"}, "")

	assert.Equal(t, []string{"деплой", "релиз", "стейдж"}, keywords)
}
