package domain

// Цвета сообщений и сущностей (классы клиентской темы).
const (
	ColorWhite       = "text-white"
	ColorRed         = "text-red-500"
	ColorDarkRed     = "text-red-900"
	ColorOrange      = "text-orange-400"
	ColorDarkOrange  = "text-orange-700"
	ColorYellow      = "text-yellow-300"
	ColorGreen       = "text-green-500"
	ColorDesatGreen  = "text-green-600"
	ColorDarkGreen   = "text-green-800"
	ColorLightGreen  = "text-green-300"
	ColorSky         = "text-sky-400"
	ColorLightBlue   = "text-blue-300"
	ColorLightCyan   = "text-cyan-300"
	ColorViolet      = "text-violet-500"
	ColorLightViolet = "text-violet-300"
	ColorGray        = "text-gray-500"
)
