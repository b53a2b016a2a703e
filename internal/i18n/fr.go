package i18n

var french = Translation{
	"Header": {
		"subtitle":    "Un bon moyen de s'exprimer en Agile",
		"logout":      "Déconnexion",
		"leave":       "Sortir",
		"summaryMode": "Mode Résumé",
	},
	"LanguagePicker": {
		"header": "Changez de langue",
	},
	"Main": {
		"hint": "Vous pouvez inviter d'autres participants en leur envoyant l'URL de cette page",
	},
	"Post": {
		"vote":         "vote",
		"votes":        "votes",
		"deleteButton": "Supprimer",
		"noContent":    "(Aucun contenu)",
		"by":           "par",
	},
	"PostBoard": {
		"customQuestion":   "Colonne personnalisée",
		"notWellQuestion":  "Qu'est-ce qui n'a pas marché?",
		"wellQuestion":     "Qu'est-ce qui s'est bien passé?",
		"ideasQuestion":    "Une idée géniale?",
		"startQuestion":    "Commencer",
		"stopQuestion":     "Arrêter",
		"continueQuestion": "Continuer",
	},
	"GameMenu": {
		"board":   "Tableau",
		"summary": "Résumé",
	},
	"Clients": {
		"header": "Déjà là:",
	},
	"Join": {
		"welcome":            "Bienvenue sur Retrospected",
		"standardTab.header": "Créer",
		"standardTab.text":   "Cliquez ci-dessous et commencez à retrospecter:",
		"standardTab.button": "Nouvelle session",
		"optionsTab.header":  "Options",
		"optionsTab.input":   "Nom",
		"optionsTab.button":  "Créer une session personnalisée",
		"previousTab.header": "Précédentes",
	},
	"Login": {
		"namePlaceholder": "Qui êtes vous exactement? Entrez votre nom ici",
		"buttonLabel":     "Commençons",
		"header":          "Se connecter",
	},
	"SummaryBoard": {
		"noPosts": "Il n'y a aucun post à afficher",
	},
	"SessionName": {
		"defaultSessionName": "Ma Retrospective",
	},
	"Generic": {
		"ok":     "OK",
		"cancel": "Annuler",
	},
	"Actions": {
		"tooltip":      "Créer une action",
		"label":        "Ouvrir le panneau des actions",
		"summaryTitle": "Vos actions",
		"title":        "Action",
	},
}
