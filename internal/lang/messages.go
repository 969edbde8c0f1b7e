package lang

type MessageID string

const (
	StartMsgID             MessageID = "start"
	HelpMsgID              MessageID = "help"
	VersionMsgID           MessageID = "version"
	AskFormatMsgID         MessageID = "ask_format"
	AskQualityMsgID        MessageID = "ask_quality"
	AudioButtonMsgID       MessageID = "audio_button"
	VideoButtonMsgID       MessageID = "video_button"
	MultipleLinksMsgID     MessageID = "multiple_links"
	SessionExpiredMsgID    MessageID = "session_expired"
	StartingDownloadMsgID  MessageID = "starting_download"
	DownloadingMsgID       MessageID = "downloading"
	FileSentMsgID          MessageID = "file_sent"
	FileTooLargeMsgID      MessageID = "file_too_large"
	UnavailableMsgID       MessageID = "unavailable"
	RestrictedMsgID        MessageID = "restricted"
	NetworkErrorMsgID      MessageID = "network_error"
	DownloadFailedMsgID    MessageID = "download_failed"
	CancelConfirmedMsgID   MessageID = "cancel_confirmed"
	NothingToCancelMsgID   MessageID = "nothing_to_cancel"
	PlaylistEmptyMsgID     MessageID = "playlist_empty"
	PlaylistProgressMsgID  MessageID = "playlist_progress"
	PlaylistSummaryMsgID   MessageID = "playlist_summary"
	UnknownCommandMsgID    MessageID = "unknown_command"
	SendTimedOutMsgID      MessageID = "send_timed_out"
	UploadPreparationMsgID MessageID = "upload_preparation"
)

var messages = map[MessageID]map[string]string{
	StartMsgID: {
		"en": "Hello! 👋\nI download audio and video from YouTube, TikTok, Likee, Twitter/X and Instagram.\nJust send me a link and I will ask whether you want audio or video.",
		"he": "שלום! 👋\nאני בוט להורדת אודיו ווידאו מיוטיוב, טיקטוק, לייקי, טוויטר ואינסטגרם.\nפשוט שלח לי לינק ואני אשאל אותך אם תרצה להוריד אודיו או וידאו.",
	},
	HelpMsgID: {
		"en": "Send me a link to a video and I will fetch it for you.\nSupported: video sharing, short-form video, micro-blogging and photo/video platforms.\nCommands: /start, /help, /version, /cancel.",
		"he": "שלח לי קישור לסרטון ואני אוריד אותו בשבילך.\nנתמכים: אתרי וידאו, וידאו קצר, מיקרו-בלוגים ורשתות תמונות.\nפקודות: /start, /help, /version, /cancel.",
	},
	VersionMsgID: {
		"en": "Version %s\n%s",
		"he": "גרסה %s\n%s",
	},
	AskFormatMsgID: {
		"en": "What would you like to download?",
		"he": "מה תרצה להוריד?",
	},
	AskQualityMsgID: {
		"en": "Which quality should I download the video in?",
		"he": "באיזו איכות להוריד את הוידאו?",
	},
	AudioButtonMsgID: {
		"en": "Audio 🎵",
		"he": "אודיו 🎵",
	},
	VideoButtonMsgID: {
		"en": "Video 🎥",
		"he": "וידאו 🎥",
	},
	MultipleLinksMsgID: {
		"en": "I found more than one link in your message, I will only use the first one.",
		"he": "מצאתי יותר מקישור אחד בהודעה, אשתמש רק בראשון.",
	},
	SessionExpiredMsgID: {
		"en": "Something went wrong, please send the link again.",
		"he": "משהו השתבש, אנא שלח את הקישור שוב.",
	},
	StartingDownloadMsgID: {
		"en": "Starting download... ⏳",
		"he": "מתחיל בהורדה... ⏳",
	},
	DownloadingMsgID: {
		"en": "Downloading the file in %s... ⏳",
		"he": "מוריד את הקובץ ב%s... ⏳",
	},
	FileSentMsgID: {
		"en": "Here is your file!%s 🎉",
		"he": "הנה הקובץ שלך!%s 🎉",
	},
	FileTooLargeMsgID: {
		"en": "The file is too large (%s). Try a lower quality or a shorter video.",
		"he": "הקובץ גדול מדי (%s). נסה באיכות נמוכה יותר או סרטון קצר יותר.",
	},
	UnavailableMsgID: {
		"en": "The video is unavailable 😕",
		"he": "הסרטון לא זמין 😕",
	},
	RestrictedMsgID: {
		"en": "This video is restricted and cannot be downloaded 🔞",
		"he": "הסרטון מוגבל ולא ניתן להורדה 🔞",
	},
	NetworkErrorMsgID: {
		"en": "A network problem occurred, please try again 🔄",
		"he": "חלה בעיית תקשורת, אנא נסה שוב 🔄",
	},
	DownloadFailedMsgID: {
		"en": "Something went wrong with the download 😕",
		"he": "משהו השתבש בהורדה 😕",
	},
	CancelConfirmedMsgID: {
		"en": "Cancelled ✅",
		"he": "בוטל ✅",
	},
	NothingToCancelMsgID: {
		"en": "There is nothing to cancel.",
		"he": "אין מה לבטל.",
	},
	PlaylistEmptyMsgID: {
		"en": "I could not find any valid items in this playlist.",
		"he": "לא מצאתי פריטים תקינים בפלייליסט הזה.",
	},
	PlaylistProgressMsgID: {
		"en": "%d/%d downloaded, now fetching: %s",
		"he": "%d/%d הורדו, כעת מוריד: %s",
	},
	PlaylistSummaryMsgID: {
		"en": "Playlist finished: %d succeeded, %d failed.",
		"he": "הפלייליסט הסתיים: %d הצליחו, %d נכשלו.",
	},
	UnknownCommandMsgID: {
		"en": "Unknown command. Use /help to see what I can do.",
		"he": "פקודה לא מוכרת. השתמש ב-/help כדי לראות מה אני יודע לעשות.",
	},
	SendTimedOutMsgID: {
		"en": "Sending timed out. The file was downloaded but could not be delivered, please try again.",
		"he": "זמן השליחה פג. הקובץ הורד בהצלחה אבל יש בעיה בשליחה. אנא נסה שוב.",
	},
	UploadPreparationMsgID: {
		"en": "Download finished, uploading... 📤",
		"he": "ההורדה הסתיימה, מעלה... 📤",
	},
}

var thanksReplies = map[string][]string{
	"en": {
		"You're welcome! 😊",
		"Any time! 🙌",
		"Glad to help! 🎉",
		"My pleasure! 🤖",
	},
	"he": {
		"בשמחה! 😊",
		"אין בעד מה! 🙌",
		"תמיד לשירותך! 🤖",
		"כיף לעזור! 🎉",
	},
}
