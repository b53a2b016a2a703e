package i18n

// hungarian omits the keys nobody has translated yet; they fall back to English.
var hungarian = Translation{
	"Header": {
		"subtitle":    "Panaszkodjunk rendezetten",
		"logout":      "Kijelentkezés",
		"leave":       "Távozás",
		"summaryMode": "Összesített mód",
	},
	"LanguagePicker": {
		"header": "Válassz nyelvet",
	},
	"Main": {
		"hint": "Ha meg akarsz hívni másokat, másold ki és oszd meg velük az URL-t",
	},
	"Group": {
		"emptyGroupTitle":   "",
		"emptyGroupContent": "",
	},
	"Post": {
		"vote":         "szavazat",
		"votes":        "szavazat",
		"deleteButton": "törlés",
		"noContent":    "(This post has no content)",
	},
	"PostBoard": {
		"notWellQuestion": "Mit lehetne jobban csinálni?",
		"wellQuestion":    "Mit ment jól?",
		"ideasQuestion":   "Van valami nagyszerű ötleted?",
	},
	"Clients": {
		"header": "Jelenleg itt van:",
	},
	"Join": {
		"welcome":                  "Üdv, ez itt a Retrospected",
		"standardTab.header":       "Ülés létrehozása",
		"standardTab.text":         "Kattints ide a kezdéshez:",
		"standardTab.button":       "Új ülés indítása",
		"optionsTab.header":        "Haladó",
		"optionsTab.input":         "Adj nevet az ülésnek",
		"optionsTab.button":        "Ülés létrehozása",
		"previousTab.header":       "Previous sessions",
		"previousTab.rejoinButton": "Rejoin",
	},
	"Login": {
		"namePlaceholder": "Hogy is hívnak? Kérlek írd ide a nevedet",
		"buttonLabel":     "Kezdjük",
		"header":          "Login",
	},
	"SummaryBoard": {
		"noPosts": "There are no posts to display",
	},
	"SessionName": {
		"defaultSessionName": "My Retrospective",
	},
	"Invite": {
		"inviteButton":      "Invite",
		"dialog.title":      "Invite people to your retrospective",
		"dialog.text":       "To invite people to your retrospected session, simply send them the following URL",
		"dialog.copyButton": "Copy URL to Clipboard",
	},
	"Generic": {
		"ok":     "OK",
		"cancel": "Megszünteti",
	},
	"Actions": {
		"tooltip":      "Hozzon létre egy műveletet az elem hátoldalán",
		"label":        "Nyissa meg a Művelet panelt",
		"summaryTitle": "Az Ön tevékenységei",
		"title":        "Akció",
	},
}
