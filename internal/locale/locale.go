// Package locale holds the static UI string tables for the two supported
// languages. Lookups are pure; nothing here has state.
package locale

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Lang is a supported UI language code.
type Lang string

const (
	TR Lang = "tr"
	EN Lang = "en"
)

// Default is used when nothing else is known.
const Default = TR

// Supported lists the languages in cycle order.
var Supported = []Lang{TR, EN}

// Key identifies a translatable UI string.
type Key string

const (
	Title               Key = "title"
	LabelGameName       Key = "labelGameName"
	BtnSubmit           Key = "btnSubmitText"
	HistoryTitle        Key = "historyTitle"
	ClearHistory        Key = "clearHistoryText"
	NoHistory           Key = "noHistory"
	InfoTitle           Key = "infoTitle"
	InfoText            Key = "infoText"
	HowToUseTitle       Key = "howToUseTitle"
	Step1               Key = "step1"
	Step2               Key = "step2"
	Step3               Key = "step3"
	Step4               Key = "step4"
	Step5               Key = "step5"
	Step6               Key = "step6"
	Step7               Key = "step7"
	GotIt               Key = "gotItText"
	Loading             Key = "loadingText"
	NoResults           Key = "noResults"
	ErrorMessage        Key = "errorMessage"
	InvalidInput        Key = "invalidInput"
	Placeholder         Key = "placeholder"
	DarkTheme           Key = "darkThemeText"
	LightTheme          Key = "lightThemeText"
	Price               Key = "price"
	Free                Key = "free"
	ViewOnSteam         Key = "viewOnSteam"
	Similarity          Key = "similarity"
	GenreFilter         Key = "genreFilter"
	ExcludeFilter       Key = "excludeFilter"
	ToggleFilters       Key = "toggleFilters"
	YearRange           Key = "yearRange"
	PlaytimeRange       Key = "playtimeRange"
	SurpriseMe          Key = "surpriseMe"
	ConfirmClearHistory Key = "confirmClearHistory"
	FavoritesTitle      Key = "favoritesTitle"
	NoFavorites         Key = "noFavorites"
	ShareGame           Key = "shareGame"
	ShareText           Key = "shareText"
	LinkCopied          Key = "linkCopied"
	RemoveFromFavorites Key = "removeFromFavorites"
	AddToFavorites      Key = "addToFavorites"
	SimilarGamesTitle   Key = "similarGamesTitle"
	OtherGamesTitle     Key = "otherGamesTitle"
	DidYouMean          Key = "didYouMean"
	YouMightLike        Key = "youMightLike"
	Visual              Key = "visual"
	Genre               Key = "genre"
	Gameplay            Key = "gameplay"
	Popularity          Key = "popularity"
	CommentsTitle       Key = "commentsTitle"
	NoComments          Key = "noComments"
	CommentPlaceholder  Key = "commentPlaceholder"
	CommentFailed       Key = "commentFailed"
	CommentTooLong      Key = "commentTooLong"
	Confirm             Key = "confirm"
	Year                Key = "year"
	Playtime            Key = "playtime"
	Why                 Key = "why"
	HelpInput           Key = "helpInput"
	HelpResults         Key = "helpResults"
	HelpHistory         Key = "helpHistory"
	HelpFavorites       Key = "helpFavorites"
	HelpFilters         Key = "helpFilters"
	HelpComments        Key = "helpComments"
)

var tables = map[Lang]map[Key]string{
	TR: {
		Title:               "GameHorizon",
		LabelGameName:       "Bir oyun adı girin:",
		BtnSubmit:           "ÖNERİLERİ GÖSTER",
		HistoryTitle:        "Geçmiş Aramalar",
		ClearHistory:        "GEÇMİŞİ TEMİZLE",
		NoHistory:           "Henüz arama yok.",
		InfoTitle:           "Oyun Keşif Yolculuğunuz",
		InfoText:            "GameHorizon, sevdiğiniz oyunlara benzer yeni oyunları keşfetmenize yardımcı akıllı bir steam oyun öneri sistemidir.",
		HowToUseTitle:       "Nasıl Kullanılır?",
		Step1:               "Arama çubuğuna sevdiğin bir oyunun adını yaz. Çoklu arama için '+' kullanabilirsin (örn: Halo + Doom).",
		Step2:               "Önerilen oyunlardan birini seçerek veya 'Enter' tuşuna basarak direkt arama yapabilirsin.",
		Step3:               "Radar grafikleri ve benzerlik yüzdeleri ile detaylı analizi inceleyebilirsin.",
		Step4:               "Gelişmiş filtreleri kullanarak yıl, oynanış süresi, dışlanacak/eklenecek türler gibi kriterleri belirleyebilirsin.",
		Step5:               "Steam sayfasına gidebilir veya önerilerini paylaşabilirsin.",
		Step6:               "Önerilerini kaybetmemek için favorilere ekleyebilir ve geçmiş aramalarını yönetebilirsin.",
		Step7:               "Tema ve dil ayarlarını tercihlerine göre değiştirebilirsin.",
		GotIt:               "ANLADIM",
		Loading:             "Sistem yükleniyor... Lütfen bekleyiniz.",
		NoResults:           "Hiç sonuç bulunamadı.",
		ErrorMessage:        "Bir hata oluştu.",
		InvalidInput:        "Lütfen bir oyun adı girin.",
		Placeholder:         "Oyun adı... (Çoklu arama için: Oyun1 + Oyun2)",
		DarkTheme:           "KOYU TEMA",
		LightTheme:          "AÇIK TEMA",
		Price:               "Ortalama Fiyat",
		Free:                "Ücretsiz",
		ViewOnSteam:         "Steam'de Görüntüle",
		Similarity:          "Benzerlik",
		GenreFilter:         "Tür Filtreleme:",
		ExcludeFilter:       "Dışlama Filtresi:",
		ToggleFilters:       "Gelişmiş Filtreler",
		YearRange:           "Yıl Aralığı:",
		PlaytimeRange:       "Oynanış (Saat):",
		SurpriseMe:          "Sürpriz Yap",
		ConfirmClearHistory: "Geçmişi silmek istiyor musunuz?",
		FavoritesTitle:      "Favoriler",
		NoFavorites:         "Favori yok.",
		ShareGame:           "Paylaş",
		ShareText:           "Bu oyuna benzer oyunlar:",
		LinkCopied:          "Link kopyalandı!",
		RemoveFromFavorites: "Çıkar",
		AddToFavorites:      "Ekle",
		SimilarGamesTitle:   "Benzer Oyunlar",
		OtherGamesTitle:     "Diğer Öneriler",
		DidYouMean:          "Bunu mu demek istediniz?",
		YouMightLike:        "Bunları beğenebilirsiniz",
		Visual:              "Görsel",
		Genre:               "Tür",
		Gameplay:            "Oynanış",
		Popularity:          "Popülerlik",
		CommentsTitle:       "Yorumlar",
		NoComments:          "Henüz yorum yok.",
		CommentPlaceholder:  "Yorumunuzu yazın...",
		CommentFailed:       "Yorum gönderilemedi.",
		CommentTooLong:      "Yorum çok uzun (en fazla 500 karakter).",
		Confirm:             "Onaylıyor musunuz? (e/h)",
		Year:                "Yıl",
		Playtime:            "Süre",
		Why:                 "Neden",
		HelpInput:           "enter ara • tab sonuçlar • ^r sürpriz • ^f filtre • ^y geçmiş • ^b favoriler • ^l dil • ^t tema • ^c çık",
		HelpResults:         "↑↓ gez • f favori • s paylaş • c yorumlar • 1-9 öneri • tab arama",
		HelpHistory:         "↑↓ gez • enter tekrar ara • d sil • x temizle • esc kapat",
		HelpFavorites:       "↑↓ gez • d kaldır • s paylaş • esc kapat",
		HelpFilters:         "tab sonraki alan • enter uygula • esc kapat",
		HelpComments:        "ctrl+s gönder • esc kapat",
	},
	EN: {
		Title:               "GameHorizon",
		LabelGameName:       "Enter a game name:",
		BtnSubmit:           "SHOW RECOMMENDATIONS",
		HistoryTitle:        "Search History",
		ClearHistory:        "CLEAR HISTORY",
		NoHistory:           "No searches yet.",
		InfoTitle:           "Your Game Discovery Journey",
		InfoText:            "GameHorizon is an intelligent recommendation system to help you discover new games.",
		HowToUseTitle:       "How to Use?",
		Step1:               "Type a game name. Use '+' for multi-game search (e.g., Halo + Doom).",
		Step2:               "You can select a suggestion or press 'Enter' to search directly.",
		Step3:               "You can analyze recommendations with radar charts and similarity scores.",
		Step4:               "You can use advanced filters for year, playtime, excluded/included genres, etc.",
		Step5:               "You can view your recommendations on Steam or share them.",
		Step6:               "You can add your recommendations to favorites and manage history.",
		Step7:               "You can change theme and language according to your preferences.",
		GotIt:               "GOT IT",
		Loading:             "System loading...",
		NoResults:           "No results found.",
		ErrorMessage:        "An error occurred.",
		InvalidInput:        "Please enter a game name.",
		Placeholder:         "Game name... (Multi-search: Game1 + Game2)",
		DarkTheme:           "DARK THEME",
		LightTheme:          "LIGHT THEME",
		Price:               "Average Price",
		Free:                "Free",
		ViewOnSteam:         "View on Steam",
		Similarity:          "Similarity",
		GenreFilter:         "Genre Filter:",
		ExcludeFilter:       "Exclusion Filter:",
		ToggleFilters:       "Advanced Filters",
		YearRange:           "Year Range:",
		PlaytimeRange:       "Playtime (Hours):",
		SurpriseMe:          "Surprise Me",
		ConfirmClearHistory: "Clear history?",
		FavoritesTitle:      "Favorites",
		NoFavorites:         "No favorites.",
		ShareGame:           "Share",
		ShareText:           "Similar games:",
		LinkCopied:          "Link copied!",
		RemoveFromFavorites: "Remove",
		AddToFavorites:      "Add",
		SimilarGamesTitle:   "Similar Games",
		OtherGamesTitle:     "Other Suggestions",
		DidYouMean:          "Did you mean?",
		YouMightLike:        "You might like",
		Visual:              "Visual",
		Genre:               "Genre",
		Gameplay:            "Gameplay",
		Popularity:          "Popularity",
		CommentsTitle:       "Comments",
		NoComments:          "No comments yet.",
		CommentPlaceholder:  "Write a comment...",
		CommentFailed:       "Could not post comment.",
		CommentTooLong:      "Comment too long (max 500 characters).",
		Confirm:             "Are you sure? (y/n)",
		Year:                "Year",
		Playtime:            "Playtime",
		Why:                 "Why",
		HelpInput:           "enter search • tab results • ^r surprise • ^f filters • ^y history • ^b favorites • ^l language • ^t theme • ^c quit",
		HelpResults:         "↑↓ move • f favorite • s share • c comments • 1-9 suggestion • tab search",
		HelpHistory:         "↑↓ move • enter search again • d remove • x clear • esc close",
		HelpFavorites:       "↑↓ move • d remove • s share • esc close",
		HelpFilters:         "tab next field • enter apply • esc close",
		HelpComments:        "ctrl+s send • esc close",
	},
}

// T returns the string for key in lang. Unknown languages fall back to the
// default table; unknown keys return the key itself.
func T(lang Lang, key Key) string {
	tbl, ok := tables[lang]
	if !ok {
		tbl = tables[Default]
	}
	if s, ok := tbl[key]; ok {
		return s
	}
	return string(key)
}

// Valid reports whether lang has a table.
func Valid(lang Lang) bool {
	_, ok := tables[lang]
	return ok
}

// Next returns the language after lang in cycle order.
func Next(lang Lang) Lang {
	for i, l := range Supported {
		if l == lang {
			return Supported[(i+1)%len(Supported)]
		}
	}
	return Default
}

// FormatDate renders t the way each locale writes calendar dates.
func FormatDate(lang Lang, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	switch lang {
	case EN:
		return t.Format("1/2/2006")
	default:
		return t.Format("02.01.2006")
	}
}

var matcher = language.NewMatcher([]language.Tag{language.Turkish, language.English})

// Negotiate picks a supported language from a POSIX locale string such as
// "en_US.UTF-8". Anything unparseable or unmatched yields fallback.
func Negotiate(posix string, fallback Lang) Lang {
	if !Valid(fallback) {
		fallback = Default
	}
	posix = strings.TrimSpace(posix)
	if i := strings.IndexAny(posix, ".@"); i >= 0 {
		posix = posix[:i]
	}
	if posix == "" || posix == "C" || posix == "POSIX" {
		return fallback
	}
	tag, err := language.Parse(strings.ReplaceAll(posix, "_", "-"))
	if err != nil {
		return fallback
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return fallback
	}
	return Supported[idx]
}
