package vedicclock

var dashaLifeLessonThemes = map[string]string{
	"Jupiter": "Expansion through wisdom and spiritual growth",
	"Saturn":  "Discipline, structure, and karmic lessons",
	"Mercury": "Communication, learning, and intellectual development",
	"Venus":   "Love, creativity, and material harmony",
	"Mars":    "Action, courage, and energy mastery",
	"Moon":    "Emotional intelligence and intuitive development",
	"Sun":     "Leadership, self-expression, and soul purpose",
	"Rahu":    "Innovation, breaking patterns, and material success",
	"Ketu":    "Spiritual detachment and inner wisdom",
}

var dashaKarmicFocus = map[string]string{
	"Jupiter": "Teaching, mentoring, and sharing wisdom",
	"Saturn":  "Building lasting foundations and accepting responsibility",
	"Mercury": "Clear communication and intellectual honesty",
	"Venus":   "Harmonious relationships and creative expression",
	"Mars":    "Righteous action and energy management",
	"Moon":    "Emotional healing and nurturing others",
	"Sun":     "Authentic self-expression and leadership",
	"Rahu":    "Breaking limiting patterns and embracing change",
	"Ketu":    "Releasing attachments and spiritual surrender",
}

func lifeLessonTheme(planet string) string {
	if t, ok := dashaLifeLessonThemes[planet]; ok {
		return t
	}
	return "Personal growth and development"
}

func karmicFocus(planet string) string {
	if f, ok := dashaKarmicFocus[planet]; ok {
		return f
	}
	return "Personal evolution and growth"
}
