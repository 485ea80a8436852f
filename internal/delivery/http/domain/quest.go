package domain

var (
	QUEST_LIST_SUCCESS            = "Berhasil mendapatkan daftar quest"
	QUEST_LIST_FAILED             = "Gagal mendapatkan daftar quest"
	QUEST_GET_SUCCESS             = "Berhasil mendapatkan data quest"
	QUEST_GET_FAILED              = "Gagal mendapatkan data quest"
	QUEST_SESSION_START_SUCCESS   = "Berhasil memulai sesi quest"
	QUEST_SESSION_START_FAILED    = "Gagal memulai sesi quest"
	QUEST_SESSION_GET_SUCCESS     = "Berhasil mendapatkan data sesi"
	QUEST_SESSION_GET_FAILED      = "Gagal mendapatkan data sesi"
	QUEST_SUBMIT_PROMPT_SUCCESS   = "Berhasil submit prompt"
	QUEST_SUBMIT_PROMPT_FAILED    = "Gagal submit prompt"
	QUEST_HINT_REVEAL_SUCCESS     = "Berhasil membuka petunjuk"
	QUEST_HINT_REVEAL_FAILED      = "Gagal membuka petunjuk"
	QUEST_SESSION_RESTART_SUCCESS = "Berhasil mengulang sesi quest"
	QUEST_SESSION_RESTART_FAILED  = "Gagal mengulang sesi quest"
	QUEST_SESSION_ABORT_SUCCESS   = "Berhasil membatalkan sesi quest"
	QUEST_SESSION_ABORT_FAILED    = "Gagal membatalkan sesi quest"
	QUEST_SESSION_FINISH_SUCCESS  = "Berhasil menyelesaikan sesi quest"
	QUEST_SESSION_FINISH_FAILED   = "Gagal menyelesaikan sesi quest"
	QUEST_PROGRESS_GET_SUCCESS    = "Berhasil mendapatkan progress"
	QUEST_LIBRARY_GET_SUCCESS     = "Berhasil mendapatkan prompt library"
	QUEST_LIBRARY_GET_FAILED      = "Gagal mendapatkan prompt library"
	QUEST_RECENT_ACTIVITY_SUCCESS = "Berhasil mendapatkan aktivitas terbaru"
	QUEST_RECENT_ACTIVITY_FAILED  = "Gagal mendapatkan aktivitas terbaru"
)
