// Package birthday validates user-entered birthdays before they reach the
// fortune engine and persists the single birthday the application remembers.
package birthday
