package model

// SurveyVideoModel merepresentasikan tabel survey_videos: satu video
// menjawab satu survey utuh (bukan per pertanyaan). Unique index
// (survey_id, uploader_id) menegakkan aturan satu video per responder
// per survey di level database.
type SurveyVideoModel struct {
	SurveyVideoID int    `gorm:"column:survey_video_id;primaryKey;autoIncrement" json:"survey_video_id"`
	QuestionLink  string `gorm:"column:question_link;size:512;not null" json:"question_link"`
	SurveyID      int    `gorm:"column:survey_id;not null;uniqueIndex:uq_survey_videos_survey_uploader,priority:1" json:"surveyId"`
	UploaderID    int    `gorm:"column:uploader_id;not null;uniqueIndex:uq_survey_videos_survey_uploader,priority:2" json:"uploaderId"`
}

func (SurveyVideoModel) TableName() string {
	return "survey_videos"
}
