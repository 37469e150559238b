// Package entity contains the core business objects of the project.
package entity

// Surah is one chapter of the Quran. The full set of 114 surahs is cached
// locally on first startup and served read-only afterwards.
type Surah struct {
	ID             int    `json:"id"`               // Surah number, 1..114.
	Name           string `json:"name"`             // Arabic name.
	EnglishName    string `json:"english_name"`     // English name.
	NumberOfAyahs  int    `json:"number_of_ayahs"`  // Verse count.
	RevelationType string `json:"revelation_type"`  // Meccan or Madinan.
	Ayahs          []Ayah `json:"ayahs,omitempty"`  // Verses, populated on single-surah reads.
}

// Ayah is one verse of the Quran with its Arabic text, transliteration and
// translation.
type Ayah struct {
	ID              int    `json:"id"`               // Global ayah number across the whole Quran.
	SurahID         int    `json:"surah_id"`         // Owning surah number.
	NumberInSurah   int    `json:"number_in_surah"`  // Verse number within the surah.
	Juz             int    `json:"juz"`              // Juz (reading section) number.
	Page            int    `json:"page"`             // Mushaf page number.
	TextArabic      string `json:"text_arabic"`      // Arabic text.
	TextLatin       string `json:"text_latin"`       // Latin transliteration.
	TextTranslation string `json:"text_translation"` // Translation text.
}

// SurahCount is the number of surahs in the Quran; the local cache is
// considered complete once this many are stored.
const SurahCount = 114
