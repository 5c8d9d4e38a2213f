package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSurveyRequestNormalize(t *testing.T) {
	req := CreateSurveyRequest{
		Title:       "  Kepuasan Pelanggan  ",
		Description: " survei triwulan ",
		Questions: []CreateSurveyQuestion{
			{Title: " Apa pendapat Anda? ", Category: " umum "},
		},
	}
	req.Normalize()

	assert.Equal(t, "Kepuasan Pelanggan", req.Title)
	assert.Equal(t, "survei triwulan", req.Description)
	assert.Equal(t, "Apa pendapat Anda?", req.Questions[0].Title)
	assert.Equal(t, "umum", req.Questions[0].Category)
}

func TestCreateSurveyRequestToModel(t *testing.T) {
	req := CreateSurveyRequest{
		Title:       "Kepuasan Pelanggan",
		Description: "survei triwulan",
		Questions: []CreateSurveyQuestion{
			{Title: "Q1", Category: "umum"},
			{Title: "Q2", Category: "produk"},
		},
	}

	m := req.ToModel(5)
	assert.Equal(t, "Kepuasan Pelanggan", m.Title)
	assert.Equal(t, 5, m.AuthorID)
	require.Len(t, m.Questions, 2)

	// pertanyaan mewarisi author survey
	assert.Equal(t, "Q1", m.Questions[0].Title)
	assert.Equal(t, 5, m.Questions[0].AuthorID)
	assert.Equal(t, 5, m.Questions[1].AuthorID)
}
