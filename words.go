package main

import (
	"strings"
)

const punctuation = ",.\n\r\\/\"'-;%^$#*@(!?)_-+=:<>[]{}~|`&"

// UniqueWords splits lines on whitespace and returns each distinct word once,
// in first-seen order. Surrounding punctuation is trimmed and words are
// lowercased; tokens without any letter are dropped.
func UniqueWords(lines []string) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, line := range lines {
		for _, w := range strings.Fields(line) {
			if AllNonAlpha(w) {
				continue
			}
			if HasNonAlpha(w) {
				w = strings.Trim(w, punctuation)
			}
			w = strings.ToLower(w)
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
	}
	return words
}

func HasNonAlpha(str string) bool {
	for _, c := range []byte(str) {
		if !IsAlpha(c) {
			return true
		}
	}
	return false
}

func AllNonAlpha(str string) bool {
	for _, c := range []byte(str) {
		if IsAlpha(c) {
			return false
		}
	}
	return true
}

func IsAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
