package locale

// String keys shared by every catalog.
const (
	KeyStart    = "start"
	KeyContinue = "continue"
	KeySettings = "settings"
	KeyHelp     = "help"
	KeyExit     = "exit"
	KeyBack     = "back"

	KeyDifficulty = "difficulty"
	KeyLanguage   = "language"
	KeyFullscreen = "fullscreen"
	KeyToggleFPS  = "toggle_fps"
	KeyEnable     = "enable"
	KeyDisable    = "disable"

	KeyEasy   = "easy"
	KeyMedium = "medium"
	KeyHard   = "hard"

	KeyChooseLanguage = "choose_language"

	KeyHelpTitle1 = "help_title_1"
	KeyHelpText1  = "help_text_1"
	KeyHelpText2  = "help_text_2"
	KeyHelpText31 = "help_text_3_1"
	KeyHelpText32 = "help_text_3_2"
	KeyHelpTitle2 = "help_title_2"
	KeyHelpText4  = "help_text_4"
	KeyHelpText5  = "help_text_5"
	KeyHelpText6  = "help_text_6"
	KeyHelpTitle3 = "help_title_3"

	KeyScore    = "score" // %d points
	KeyWin      = "win"
	KeyLose     = "lose" // %d points, %d fails
	KeyTryAgain = "try_again"
)

// Keys lists every key a complete catalog provides.
var Keys = []string{
	KeyStart, KeyContinue, KeySettings, KeyHelp, KeyExit, KeyBack,
	KeyDifficulty, KeyLanguage, KeyFullscreen, KeyToggleFPS, KeyEnable, KeyDisable,
	KeyEasy, KeyMedium, KeyHard,
	KeyChooseLanguage,
	KeyHelpTitle1, KeyHelpText1, KeyHelpText2, KeyHelpText31, KeyHelpText32,
	KeyHelpTitle2, KeyHelpText4, KeyHelpText5, KeyHelpText6, KeyHelpTitle3,
	KeyScore, KeyWin, KeyLose, KeyTryAgain,
}
