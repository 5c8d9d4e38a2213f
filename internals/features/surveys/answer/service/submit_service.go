// internals/features/surveys/answer/service/submit_service.go
//
// Alur submit jawaban (inti platform):
//   1. validasi seluruh elemen DI DEPAN — belum ada write sama sekali
//   2. side-channel video: maksimal satu per (survey, uploader); gagal
//      upload tidak pernah menggagalkan jawaban teks
//   3. upsert semua jawaban dalam SATU transaksi di key
//      (question_id, author_id, survey_id)
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	answerDTO "surveyku_backend/internals/features/surveys/answer/dto"
	answerModel "surveyku_backend/internals/features/surveys/answer/model"
	videoModel "surveyku_backend/internals/features/surveys/video/model"
	userModel "surveyku_backend/internals/features/users/user/model"
	oss "surveyku_backend/internals/helpers/oss"
)

// VideoPlaceholderText dipakai saat elemen punya video tapi teks kosong.
const VideoPlaceholderText = "Video response provided"

type SubmitResult struct {
	Answers    []answerModel.AnswerModel
	VideoAdded bool
}

// VideoStore memisahkan persistensi baris video dari alur upload supaya
// aturan satu-video-per-(survey,uploader) bisa diuji tanpa database.
type VideoStore interface {
	HasVideo(surveyID, uploaderID int) (bool, error)
	SaveVideo(row *videoModel.SurveyVideoModel) (saved bool, err error)
}

type gormVideoStore struct {
	db *gorm.DB
}

func (s gormVideoStore) HasVideo(surveyID, uploaderID int) (bool, error) {
	var n int64
	err := s.db.Table("survey_videos").
		Where("survey_id = ? AND uploader_id = ?", surveyID, uploaderID).
		Count(&n).Error
	return n > 0, err
}

func (s gormVideoStore) SaveVideo(row *videoModel.SurveyVideoModel) (bool, error) {
	// unique index (survey_id, uploader_id) menutup race dua submit paralel:
	// yang kalah cukup DoNothing, tidak error
	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "survey_id"}, {Name: "uploader_id"}},
		DoNothing: true,
	}).Create(row)
	return res.RowsAffected > 0, res.Error
}

// ValidateSubmission memeriksa seluruh elemen sebelum ada write.
// Pure function supaya gampang diunit-test tanpa DB.
func ValidateSubmission(inputs []answerDTO.AnswerInput, hasVideo bool) error {
	if len(inputs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No answers provided")
	}
	for i, in := range inputs {
		if strings.TrimSpace(in.Text) == "" && !hasVideo {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Text answer is required when no video is provided (answer %d)", i))
		}
		if in.SurveyID <= 0 || in.QuestionID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Missing required fields: surveyId or questionId (answer %d)", i))
		}
		if in.SurveyID != inputs[0].SurveyID {
			return fiber.NewError(fiber.StatusBadRequest, "All answers must belong to the same survey")
		}
	}
	return nil
}

// AnswerText menentukan teks yang dipersist untuk satu elemen.
func AnswerText(text string, hasVideo bool) string {
	if strings.TrimSpace(text) == "" && hasVideo {
		return VideoPlaceholderText
	}
	return text
}

// SubmitAnswers menjalankan alur lengkap untuk satu request submit.
// blob boleh nil (storage dimatikan) — video di-skip, teks tetap jalan.
func SubmitAnswers(ctx context.Context, db *gorm.DB, blob oss.VideoBlobService, userID int, inputs []answerDTO.AnswerInput, fh *multipart.FileHeader) (*SubmitResult, error) {
	hasVideo := fh != nil

	if err := ValidateSubmission(inputs, hasVideo); err != nil {
		return nil, err
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to submit answer")
	}

	// seluruh pertanyaan harus ada di survey yang diklaim — dicek sebelum write
	for _, in := range inputs {
		var n int64
		if err := db.Table("questions").
			Where("question_id = ? AND survey_id = ?", in.QuestionID, in.SurveyID).
			Count(&n).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to submit answer")
		}
		if n == 0 {
			return nil, fiber.NewError(fiber.StatusNotFound,
				fmt.Sprintf("Question %d not found in survey %d", in.QuestionID, in.SurveyID))
		}
	}

	surveyID := inputs[0].SurveyID
	videoAdded := false
	if hasVideo {
		videoAdded = handleVideoUpload(ctx, gormVideoStore{db: db}, blob, surveyID, userID, fh)
	}

	result := &SubmitResult{VideoAdded: videoAdded}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, in := range inputs {
			row := answerModel.AnswerModel{
				Text:       AnswerText(in.Text, hasVideo),
				CreatedAt:  time.Now(),
				AuthorID:   userID,
				SurveyID:   in.SurveyID,
				QuestionID: in.QuestionID,
			}
			// upsert di unique key — submit ulang menimpa teks, tidak duplikat
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "question_id"}, {Name: "author_id"}, {Name: "survey_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"text":       row.Text,
					"created_at": row.CreatedAt,
				}),
			}).Create(&row).Error; err != nil {
				return err
			}

			// baca balik supaya answer_id valid juga di jalur update
			var saved answerModel.AnswerModel
			if err := tx.
				Where("question_id = ? AND author_id = ? AND survey_id = ?", in.QuestionID, userID, in.SurveyID).
				First(&saved).Error; err != nil {
				return err
			}
			result.Answers = append(result.Answers, saved)
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] submit answers tx:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to submit answer")
	}
	return result, nil
}

// handleVideoUpload menjalankan side-channel video. Return true hanya kalau
// baris SurveyVideo baru benar-benar tersimpan; segala kegagalan cukup
// dicatat di log. Kalau responder sudah punya video, storage tidak disentuh
// sama sekali.
func handleVideoUpload(ctx context.Context, store VideoStore, blob oss.VideoBlobService, surveyID, uploaderID int, fh *multipart.FileHeader) bool {
	if blob == nil {
		log.Println("[WARN] video attached but storage is disabled, skipping upload")
		return false
	}

	exists, err := store.HasVideo(surveyID, uploaderID)
	if err != nil {
		log.Println("[ERROR] video lookup:", err)
		return false
	}
	if exists {
		log.Printf("[INFO] user %d already has a video for survey %d, skipping upload", uploaderID, surveyID)
		return false
	}

	link, err := blob.UploadVideo(ctx, fh)
	if err != nil {
		log.Println("[ERROR] video upload:", err)
		return false
	}

	saved, err := store.SaveVideo(&videoModel.SurveyVideoModel{
		QuestionLink: link,
		SurveyID:     surveyID,
		UploaderID:   uploaderID,
	})
	if err != nil {
		log.Println("[ERROR] video row insert:", err)
		return false
	}
	return saved
}
