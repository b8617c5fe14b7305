package types

import (
	"github.com/voxnote/study-api/internal/database"
	"github.com/voxnote/study-api/internal/services/auth"
	"github.com/voxnote/study-api/internal/services/blobstore"
	"github.com/voxnote/study-api/internal/services/chat"
	"github.com/voxnote/study-api/internal/services/insights"
	"github.com/voxnote/study-api/internal/services/records"
	"github.com/voxnote/study-api/internal/services/transcriber"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	Verifier       auth.Verifier
	Gateway        blobstore.Gateway
	RecordService  records.Service
	Transcriber    transcriber.Service
	InsightService insights.Service
	ChatService    chat.Service
}
