package fortune

import "time"

// Element is one of the four classical elements assigned to a zodiac sign.
type Element string

// Valid elements
const (
	ElementFire  Element = "Fire"
	ElementEarth Element = "Earth"
	ElementAir   Element = "Air"
	ElementWater Element = "Water"
)

// DayColor is the traditional Thai color of a day of the week.
type DayColor struct {
	Weekday   time.Weekday `json:"weekday"`
	Name      string       `json:"name"`
	LocalName string       `json:"local_name"`
	Hex       string       `json:"hex"`
	Glow      string       `json:"glow"`
}

// DayName is the English and Thai name of a day of the week.
type DayName struct {
	Weekday time.Weekday `json:"weekday"`
	English string       `json:"english"`
	Local   string       `json:"local"`
}

// ZodiacSign is a western zodiac sign and the inclusive month/day range it covers.
type ZodiacSign struct {
	Name       string     `json:"name"`
	Symbol     string     `json:"symbol"`
	LocalName  string     `json:"local_name"`
	Element    Element    `json:"element"`
	StartMonth time.Month `json:"start_month"`
	StartDay   int        `json:"start_day"`
	EndMonth   time.Month `json:"end_month"`
	EndDay     int        `json:"end_day"`
}

// ElementDirection is the lucky compass direction of an element.
type ElementDirection struct {
	Element   Element `json:"element"`
	Direction string  `json:"direction"`
	Degrees   int     `json:"degrees"`
	LocalName string  `json:"local_name"`
}

// dayColors is indexed by time.Weekday (Sunday = 0).
var dayColors = [7]DayColor{
	{Weekday: time.Sunday, Name: "Red", LocalName: "สีแดง", Hex: "#DC2626", Glow: "rgba(220, 38, 38, 0.15)"},
	{Weekday: time.Monday, Name: "Yellow", LocalName: "สีเหลือง", Hex: "#EAB308", Glow: "rgba(234, 179, 8, 0.15)"},
	{Weekday: time.Tuesday, Name: "Pink", LocalName: "สีชมพู", Hex: "#EC4899", Glow: "rgba(236, 72, 153, 0.15)"},
	{Weekday: time.Wednesday, Name: "Green", LocalName: "สีเขียว", Hex: "#22C55E", Glow: "rgba(34, 197, 94, 0.15)"},
	{Weekday: time.Thursday, Name: "Orange", LocalName: "สีส้ม", Hex: "#F97316", Glow: "rgba(249, 115, 22, 0.15)"},
	{Weekday: time.Friday, Name: "Blue", LocalName: "สีฟ้า", Hex: "#3B82F6", Glow: "rgba(59, 130, 246, 0.15)"},
	{Weekday: time.Saturday, Name: "Purple", LocalName: "สีม่วง", Hex: "#A855F7", Glow: "rgba(168, 85, 247, 0.15)"},
}

// dayNames is indexed by time.Weekday (Sunday = 0).
var dayNames = [7]DayName{
	{Weekday: time.Sunday, English: "Sunday", Local: "วันอาทิตย์"},
	{Weekday: time.Monday, English: "Monday", Local: "วันจันทร์"},
	{Weekday: time.Tuesday, English: "Tuesday", Local: "วันอังคาร"},
	{Weekday: time.Wednesday, English: "Wednesday", Local: "วันพุธ"},
	{Weekday: time.Thursday, English: "Thursday", Local: "วันพฤหัสบดี"},
	{Weekday: time.Friday, English: "Friday", Local: "วันศุกร์"},
	{Weekday: time.Saturday, English: "Saturday", Local: "วันเสาร์"},
}

// zodiacSigns is in canonical classification order. Capricorn comes first and
// is the only sign whose range wraps from December into January.
var zodiacSigns = [12]ZodiacSign{
	{Name: "Capricorn", Symbol: "♑", LocalName: "ราศีมังกร", Element: ElementEarth, StartMonth: time.December, StartDay: 22, EndMonth: time.January, EndDay: 19},
	{Name: "Aquarius", Symbol: "♒", LocalName: "ราศีกุมภ์", Element: ElementAir, StartMonth: time.January, StartDay: 20, EndMonth: time.February, EndDay: 18},
	{Name: "Pisces", Symbol: "♓", LocalName: "ราศีมีน", Element: ElementWater, StartMonth: time.February, StartDay: 19, EndMonth: time.March, EndDay: 20},
	{Name: "Aries", Symbol: "♈", LocalName: "ราศีเมษ", Element: ElementFire, StartMonth: time.March, StartDay: 21, EndMonth: time.April, EndDay: 19},
	{Name: "Taurus", Symbol: "♉", LocalName: "ราศีพฤษภ", Element: ElementEarth, StartMonth: time.April, StartDay: 20, EndMonth: time.May, EndDay: 20},
	{Name: "Gemini", Symbol: "♊", LocalName: "ราศีเมถุน", Element: ElementAir, StartMonth: time.May, StartDay: 21, EndMonth: time.June, EndDay: 20},
	{Name: "Cancer", Symbol: "♋", LocalName: "ราศีกรกฎ", Element: ElementWater, StartMonth: time.June, StartDay: 21, EndMonth: time.July, EndDay: 22},
	{Name: "Leo", Symbol: "♌", LocalName: "ราศีสิงห์", Element: ElementFire, StartMonth: time.July, StartDay: 23, EndMonth: time.August, EndDay: 22},
	{Name: "Virgo", Symbol: "♍", LocalName: "ราศีกันย์", Element: ElementEarth, StartMonth: time.August, StartDay: 23, EndMonth: time.September, EndDay: 22},
	{Name: "Libra", Symbol: "♎", LocalName: "ราศีตุลย์", Element: ElementAir, StartMonth: time.September, StartDay: 23, EndMonth: time.October, EndDay: 22},
	{Name: "Scorpio", Symbol: "♏", LocalName: "ราศีพิจิก", Element: ElementWater, StartMonth: time.October, StartDay: 23, EndMonth: time.November, EndDay: 21},
	{Name: "Sagittarius", Symbol: "♐", LocalName: "ราศีธนู", Element: ElementFire, StartMonth: time.November, StartDay: 22, EndMonth: time.December, EndDay: 21},
}

var elementDirections = map[Element]ElementDirection{
	ElementFire:  {Element: ElementFire, Direction: "South", Degrees: 180, LocalName: "ทิศใต้"},
	ElementEarth: {Element: ElementEarth, Direction: "Center/Northeast", Degrees: 45, LocalName: "ทิศตะวันออกเฉียงเหนือ"},
	ElementAir:   {Element: ElementAir, Direction: "East", Degrees: 90, LocalName: "ทิศตะวันออก"},
	ElementWater: {Element: ElementWater, Direction: "North", Degrees: 0, LocalName: "ทิศเหนือ"},
}

var positiveMessages = [...]string{
	"The stars align in your favor today. Trust your intuition and embrace new opportunities.",
	"Your energy is magnetic today. Others are drawn to your natural charisma.",
	"A unexpected blessing may arrive. Stay open to receiving abundance.",
	"Your creativity flows freely. This is an excellent day for artistic pursuits.",
	"Harmony surrounds you. Relationships flourish under today's celestial influence.",
	"Fortune favors the bold. Take that leap of faith you've been considering.",
	"Inner peace guides your decisions. Trust the wisdom within.",
}

var guidanceMessages = [...]string{
	"Focus on self-care and nurturing your spirit.",
	"Connect with loved ones and strengthen bonds.",
	"Take time to reflect and plan your next steps.",
	"Express gratitude for the blessings in your life.",
	"Balance work and rest for optimal wellbeing.",
	"Trust the timing of the universe.",
	"Let go of what no longer serves you.",
}

var lifePathMeanings = map[int]string{
	1:  "Leadership & Independence",
	2:  "Harmony & Partnership",
	3:  "Creativity & Expression",
	4:  "Stability & Foundation",
	5:  "Freedom & Adventure",
	6:  "Love & Responsibility",
	7:  "Wisdom & Spirituality",
	8:  "Abundance & Power",
	9:  "Compassion & Completion",
	11: "Intuition & Enlightenment",
	22: "Master Builder",
	33: "Master Teacher",
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DayColors returns a copy of the weekday color table, indexed by weekday.
func DayColors() []DayColor {
	out := make([]DayColor, len(dayColors))
	copy(out, dayColors[:])
	return out
}

// ZodiacSigns returns a copy of the zodiac table in classification order.
func ZodiacSigns() []ZodiacSign {
	out := make([]ZodiacSign, len(zodiacSigns))
	copy(out, zodiacSigns[:])
	return out
}

// DirectionForElement returns the lucky direction of e.
func DirectionForElement(e Element) (ElementDirection, bool) {
	dir, ok := elementDirections[e]
	return dir, ok
}

// PositiveMessages returns a copy of the daily message pool.
func PositiveMessages() []string {
	return append([]string(nil), positiveMessages[:]...)
}

// GuidanceMessages returns a copy of the daily guidance pool.
func GuidanceMessages() []string {
	return append([]string(nil), guidanceMessages[:]...)
}
