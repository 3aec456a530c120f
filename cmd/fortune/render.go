package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/phrazzld/fortune/internal/fortune"
)

// jsonReading is the JSON shape of a reading, with display labels added.
type jsonReading struct {
	*fortune.Reading
	BirthdayLabel  string `json:"birthday_label"`
	TodayLabel     string `json:"today_label"`
	LuckyHourLabel string `json:"lucky_hour_label"`
}

// renderJSON writes r as indented JSON.
func renderJSON(w io.Writer, r *fortune.Reading) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(jsonReading{
		Reading:        r,
		BirthdayLabel:  fortune.FormatDisplayDate(r.Birthday),
		TodayLabel:     fortune.FormatDisplayDate(r.Today),
		LuckyHourLabel: fortune.FormatHour(r.Horoscope.LuckyHour),
	})
}

// renderText writes r as an aligned, human readable report.
func renderText(w io.Writer, r *fortune.Reading) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	sign := r.Direction.Sign
	dir := r.Direction.Direction

	fmt.Fprintf(tw, "Daily fortune for %s\n", fortune.FormatDisplayDate(r.Today))
	fmt.Fprintf(tw, "Birthday\t%s (%s, %s)\n",
		fortune.FormatDisplayDate(r.Birthday), r.BirthColor.Day.English, r.BirthColor.Day.Local)
	fmt.Fprintf(tw, "Birth color\t%s %s %s\n",
		r.BirthColor.Color.Name, r.BirthColor.Color.LocalName, r.BirthColor.Color.Hex)
	fmt.Fprintf(tw, "Today's color\t%s %s %s\n", r.TodayColor.Name, r.TodayColor.LocalName, r.TodayColor.Hex)
	if r.ColorMatch {
		fmt.Fprintf(tw, "\tYour birth color is today's color.\n")
	}
	fmt.Fprintf(tw, "Life path\t%d %s\n", r.Numbers.LifePath, r.LifePathMeaning)
	fmt.Fprintf(tw, "Daily number\t%d\n", r.Numbers.Daily)
	fmt.Fprintf(tw, "Zodiac\t%s %s %s (%s)\n", sign.Symbol, sign.Name, sign.LocalName, sign.Element)
	fmt.Fprintf(tw, "Lucky direction\t%s %d° %s\n", dir.Direction, dir.Degrees, dir.LocalName)
	fmt.Fprintf(tw, "Horoscope\t%s\n", r.Horoscope.Message)
	fmt.Fprintf(tw, "Guidance\t%s\n", r.Horoscope.Guidance)
	fmt.Fprintf(tw, "Lucky hour\t%s\n", fortune.FormatHour(r.Horoscope.LuckyHour))

	return tw.Flush()
}
