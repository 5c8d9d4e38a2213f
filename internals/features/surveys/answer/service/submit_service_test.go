package service

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	answerDTO "surveyku_backend/internals/features/surveys/answer/dto"
	videoModel "surveyku_backend/internals/features/surveys/video/model"
	oss "surveyku_backend/internals/helpers/oss"
)

type videoStoreMock struct{ mock.Mock }

func (m *videoStoreMock) HasVideo(surveyID, uploaderID int) (bool, error) {
	args := m.Called(surveyID, uploaderID)
	return args.Bool(0), args.Error(1)
}

func (m *videoStoreMock) SaveVideo(row *videoModel.SurveyVideoModel) (bool, error) {
	args := m.Called(row)
	return args.Bool(0), args.Error(1)
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []answerDTO.AnswerInput
		hasVideo bool
		wantCode int
		wantMsg  string
	}{
		{
			name:     "empty array rejected",
			inputs:   nil,
			wantCode: fiber.StatusBadRequest,
			wantMsg:  "No answers provided",
		},
		{
			name: "empty text without video rejected with index",
			inputs: []answerDTO.AnswerInput{
				{Text: "ok", SurveyID: 1, QuestionID: 1},
				{Text: "   ", SurveyID: 1, QuestionID: 2},
			},
			wantCode: fiber.StatusBadRequest,
			wantMsg:  "Text answer is required when no video is provided (answer 1)",
		},
		{
			name: "empty text with video accepted",
			inputs: []answerDTO.AnswerInput{
				{Text: "", SurveyID: 1, QuestionID: 1},
			},
			hasVideo: true,
		},
		{
			name: "missing questionId rejected",
			inputs: []answerDTO.AnswerInput{
				{Text: "ok", SurveyID: 1},
			},
			wantCode: fiber.StatusBadRequest,
			wantMsg:  "Missing required fields: surveyId or questionId (answer 0)",
		},
		{
			name: "missing surveyId rejected",
			inputs: []answerDTO.AnswerInput{
				{Text: "ok", QuestionID: 3},
			},
			wantCode: fiber.StatusBadRequest,
			wantMsg:  "Missing required fields: surveyId or questionId (answer 0)",
		},
		{
			name: "mixed surveys rejected",
			inputs: []answerDTO.AnswerInput{
				{Text: "a", SurveyID: 1, QuestionID: 1},
				{Text: "b", SurveyID: 2, QuestionID: 2},
			},
			wantCode: fiber.StatusBadRequest,
			wantMsg:  "All answers must belong to the same survey",
		},
		{
			name: "valid batch accepted",
			inputs: []answerDTO.AnswerInput{
				{Text: "a", SurveyID: 1, QuestionID: 1},
				{Text: "b", SurveyID: 1, QuestionID: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubmission(tt.inputs, tt.hasVideo)
			if tt.wantCode == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var fe *fiber.Error
			require.True(t, errors.As(err, &fe), "service errors must carry their status code")
			assert.Equal(t, tt.wantCode, fe.Code)
			assert.Equal(t, tt.wantMsg, fe.Message)
		})
	}
}

func TestHandleVideoUploadSkipsWhenResponderAlreadyHasVideo(t *testing.T) {
	store := new(videoStoreMock)
	store.On("HasVideo", 1, 7).Return(true, nil)
	blob := &oss.MockVideoBlobService{}

	added := handleVideoUpload(context.Background(), store, blob, 1, 7, &multipart.FileHeader{Filename: "clip.mp4"})

	assert.False(t, added)
	assert.Equal(t, 0, blob.Calls, "storage must not be touched when a video already exists")
	store.AssertNotCalled(t, "SaveVideo", mock.Anything)
	store.AssertExpectations(t)
}

func TestHandleVideoUploadStoresLinkOnFirstUpload(t *testing.T) {
	store := new(videoStoreMock)
	store.On("HasVideo", 1, 7).Return(false, nil)
	store.On("SaveVideo", mock.AnythingOfType("*model.SurveyVideoModel")).Return(true, nil)
	blob := &oss.MockVideoBlobService{
		UploadVideoFn: func(ctx context.Context, fh *multipart.FileHeader) (string, error) {
			return "https://cdn.example.com/videos/clip.mp4", nil
		},
	}

	added := handleVideoUpload(context.Background(), store, blob, 1, 7, &multipart.FileHeader{Filename: "clip.mp4"})

	assert.True(t, added)
	assert.Equal(t, 1, blob.Calls)
	store.AssertCalled(t, "SaveVideo", &videoModel.SurveyVideoModel{
		QuestionLink: "https://cdn.example.com/videos/clip.mp4",
		SurveyID:     1,
		UploaderID:   7,
	})
	store.AssertExpectations(t)
}

func TestHandleVideoUploadFailureIsNonFatal(t *testing.T) {
	store := new(videoStoreMock)
	store.On("HasVideo", 1, 7).Return(false, nil)
	blob := &oss.MockVideoBlobService{
		UploadVideoFn: func(ctx context.Context, fh *multipart.FileHeader) (string, error) {
			return "", errors.New("oss unreachable")
		},
	}

	added := handleVideoUpload(context.Background(), store, blob, 1, 7, &multipart.FileHeader{Filename: "clip.mp4"})

	assert.False(t, added)
	store.AssertNotCalled(t, "SaveVideo", mock.Anything)
}

func TestHandleVideoUploadLosingRaceReportsNotAdded(t *testing.T) {
	store := new(videoStoreMock)
	store.On("HasVideo", 1, 7).Return(false, nil)
	// insert paralel kalah di unique index → DoNothing, nol baris
	store.On("SaveVideo", mock.AnythingOfType("*model.SurveyVideoModel")).Return(false, nil)
	blob := &oss.MockVideoBlobService{
		UploadVideoFn: func(ctx context.Context, fh *multipart.FileHeader) (string, error) {
			return "https://cdn.example.com/videos/clip.mp4", nil
		},
	}

	added := handleVideoUpload(context.Background(), store, blob, 1, 7, &multipart.FileHeader{Filename: "clip.mp4"})
	assert.False(t, added)
}

func TestSubmitAnswersRejectsBeforeAnySideEffect(t *testing.T) {
	blob := &oss.MockVideoBlobService{}
	fh := &multipart.FileHeader{Filename: "clip.mp4"}

	// batch tidak valid → ditolak sebelum menyentuh DB maupun storage
	_, err := SubmitAnswers(context.Background(), nil, blob, 1, nil, fh)
	require.Error(t, err)

	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, 0, blob.Calls, "storage must not be touched on a rejected batch")
}

func TestAnswerText(t *testing.T) {
	assert.Equal(t, "hello", AnswerText("hello", false))
	assert.Equal(t, "hello", AnswerText("hello", true))
	assert.Equal(t, VideoPlaceholderText, AnswerText("", true))
	assert.Equal(t, VideoPlaceholderText, AnswerText("   ", true))
}
