// Package fortune implements the daily fortune engine: a set of pure,
// deterministic functions that derive a birth color, a zodiac sign and lucky
// direction, a numerology life-path number, a daily lucky number and a
// rotating horoscope message from a birthday and the current calendar date.
//
// Every function that depends on "today" takes it as an explicit Date
// argument. Only Service reads the wall clock, and it does so once per
// Reading, so a reading is never split across a day boundary.
//
// Inputs are assumed to be valid calendar dates. Validation of user-entered
// birthdays belongs to the caller (see package birthday).
package fortune
