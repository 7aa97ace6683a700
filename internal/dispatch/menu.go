package dispatch

import (
	"github.com/kingsalmon6969-svg/hermax-bot/internal/session"
)

// Menu labels are exact literal strings; the label text doubles as
// the transition trigger, so changing a label here changes the
// protocol with existing keyboards.
const (
	LabelTime        = "⏰ Time"
	LabelWeather     = "🌦️ Weather"
	LabelImages      = "🖼️ Images"
	LabelAIChat      = "🤖 AI Chat"
	LabelMath        = "🧮 Math"
	LabelAIGen       = "🎨 AI Gen"
	LabelVideoToGIF  = "📹 Video to GIF"
	LabelMusicEdit   = "🎵 Music Edit"
	LabelDreamriddle = "🌀 Dreamriddle"
	LabelPlayGame    = "🎮 Play Game"
	LabelArticles    = "📚 HERMAX_ARTICLES"
	LabelSafety      = "🛡️ HERMAX_SAFETY"
	LabelRoleplay    = "🎭 HERMAX_ROLEPLAY"
	LabelNews        = "📰 HERMAX_NEWS"
	LabelBack        = "🔙 Back"
)

// WelcomeReply and MainMenuReply frame the reset transitions.
const (
	WelcomeReply  = "Welcome! Choose an option:"
	MainMenuReply = "Main Menu:"
)

// MainMenuRows is the reply-keyboard layout, two labels per row.
var MainMenuRows = [][]string{
	{LabelTime, LabelWeather},
	{LabelImages, LabelAIChat},
	{LabelMath, LabelAIGen},
	{LabelVideoToGIF, LabelMusicEdit},
	{LabelDreamriddle, LabelPlayGame},
	{LabelArticles, LabelSafety},
	{LabelRoleplay, LabelNews},
}

// menuEntry describes one menu label: either a mode-entry transition
// (mode != "") or a static reply.
type menuEntry struct {
	mode    session.Mode                // target mode; "" means no mode change
	prompt  string                      // reply text
	webApp  *WebAppLink                 // inline web-app button for static entries
	onEnter func(sess *session.Session) // mode-scoped field resets
}

// menuTable maps menu labels to transitions. The music edit entry is
// resolved at dispatch time because its behavior is configurable.
var menuTable = map[string]menuEntry{
	LabelTime: {
		mode:   session.ModeTime,
		prompt: "Please enter your city or country name for the local time:",
	},
	LabelWeather: {
		mode:   session.ModeWeather,
		prompt: "Please enter your city name for weather info:",
	},
	LabelImages: {
		mode:   session.ModeImages,
		prompt: "What kind of images are you looking for today? ✨🌸",
	},
	LabelAIChat: {
		mode:   session.ModeAIChat,
		prompt: "You are now chatting with AI. Say hi! (Press Back to exit)",
		onEnter: func(sess *session.Session) {
			sess.ChatHistory = nil
		},
	},
	LabelMath: {
		mode: session.ModeMath,
		prompt: "I'm ready to solve some math! 🧮✨ Please enter your problem " +
			"(it can be simple arithmetic, trigonometry, complex equations, or even imaginary numbers!):",
	},
	LabelAIGen: {
		prompt: "Please use @Heramx_generationbot for AI Generation. ✨",
	},
	LabelVideoToGIF: {
		mode:   session.ModeVideoToGIF,
		prompt: "Please send me a video file and I'll convert it to a GIF for you! 📹✨",
	},
	LabelDreamriddle: {
		mode:   session.ModeDreamriddle,
		prompt: "░░🌫️░░ Hello… stranger.\nWhat did you dream about? 🌙",
		onEnter: func(sess *session.Session) {
			sess.DreamHistory = nil
		},
	},
	LabelPlayGame: {
		prompt: "Click the button below to start your adventure with CrazyGames! 🎮",
		webApp: &WebAppLink{Label: "🚀 Play Games", URL: "https://www.crazygames.com/"},
	},
	LabelArticles: {
		prompt: "Click below to explore HERMAX ARTICLES:",
		webApp: &WebAppLink{Label: "📖 open HERMAX ARTICLES", URL: "https://kingsalmon6969-svg.github.io/Articles/"},
	},
	LabelSafety: {
		prompt: "Click below to explore HERMAX SAFETY:",
		webApp: &WebAppLink{Label: "🛡️ open HERMAX SAFETY", URL: "https://google.com"},
	},
	LabelRoleplay: {
		prompt: "✨ Start your role-play fantasies here! ✨\nUnleash your imagination and explore new worlds. 🎭✨🌸",
		webApp: &WebAppLink{Label: "🎭 HEXMAX_RP", URL: "https://hermaxrp--up0397636.replit.app/"},
	},
	LabelNews: {
		prompt: "Stay updated with the latest news! 📰",
		webApp: &WebAppLink{Label: "📰 Open HERMAX NEWS", URL: "https://news-web-app--usep8684.replit.app"},
	},
}

// Sonic Lab: the historical music edit behavior links out to a web
// app and never enters music_edit mode.
const sonicLabURL = "https://sonic-lab--usage1133.replit.app/"

var musicEditWebAppEntry = menuEntry{
	prompt: "Click the button below to open the Sonic Lab Music Editor: 🎵\n\n" +
		"Link for browser: " + sonicLabURL,
	webApp: &WebAppLink{Label: "🎵 Open Sonic Lab", URL: sonicLabURL},
}

var musicEditModeEntry = menuEntry{
	mode:   session.ModeMusicEdit,
	prompt: "Send me a music file and I'll apply an effect to it! 🎵✨",
}

// followUpPrompts are appended after each turn in the simple lookup
// modes, inviting another attempt.
var followUpPrompts = map[session.Mode]string{
	session.ModeTime:    "Enter another location or press Back.",
	session.ModeWeather: "Enter another location or press Back.",
	session.ModeImages:  "Enter another topic or press Back. ✨🌸",
	session.ModeMath:    "Enter another math problem or press Back. 🧮✨",
}
