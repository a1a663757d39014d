package meals

import "github.com/cardiovital/server/internal/i18n"

var positivePool = map[i18n.Language][]string{
	i18n.Portuguese: {
		"Boa quantidade de proteínas",
		"Presença de vegetais",
		"Carboidratos complexos",
		"Baixo teor de gordura saturada",
		"Rica em fibras",
	},
	i18n.English: {
		"Good amount of protein",
		"Presence of vegetables",
		"Complex carbohydrates",
		"Low saturated fat content",
		"Rich in fiber",
	},
	i18n.Dutch: {
		"Goede hoeveelheid eiwitten",
		"Aanwezigheid van groenten",
		"Complexe koolhydraten",
		"Laag verzadigd vetgehalte",
		"Rijk aan vezels",
	},
	i18n.French: {
		"Bonne quantité de protéines",
		"Présence de légumes",
		"Glucides complexes",
		"Faible teneur en graisses saturées",
		"Riche en fibres",
	},
	i18n.German: {
		"Gute Proteinmenge",
		"Vorhandensein von Gemüse",
		"Komplexe Kohlenhydrate",
		"Niedriger Gehalt an gesättigten Fettsäuren",
		"Reich an Ballaststoffen",
	},
}

var improvementPool = map[i18n.Language][]string{
	i18n.Portuguese: {
		"Reduza o sal",
		"Adicione mais vegetais verdes",
		"Evite frituras",
		"Prefira grãos integrais",
		"Reduza açúcar",
	},
	i18n.English: {
		"Reduce salt",
		"Add more green vegetables",
		"Avoid fried foods",
		"Prefer whole grains",
		"Reduce sugar",
	},
	i18n.Dutch: {
		"Verminder zout",
		"Voeg meer groene groenten toe",
		"Vermijd gefrituurde gerechten",
		"Geef de voorkeur aan volkoren granen",
		"Verminder suiker",
	},
	i18n.French: {
		"Réduisez le sel",
		"Ajoutez plus de légumes verts",
		"Évitez les fritures",
		"Préférez les grains entiers",
		"Réduisez le sucre",
	},
	i18n.German: {
		"Salz reduzieren",
		"Mehr grünes Gemüse hinzufügen",
		"Frittierte Speisen vermeiden",
		"Vollkornprodukte bevorzugen",
		"Zucker reduzieren",
	},
}

var recommendationPool = map[i18n.Language][]string{
	i18n.Portuguese: {
		"Beba mais água durante o dia",
		"Adicione uma porção de frutas",
		"Inclua mais fibras na próxima refeição",
	},
	i18n.English: {
		"Drink more water during the day",
		"Add a serving of fruit",
		"Include more fiber in the next meal",
	},
	i18n.Dutch: {
		"Drink meer water gedurende de dag",
		"Voeg een portie fruit toe",
		"Neem meer vezels op in de volgende maaltijd",
	},
	i18n.French: {
		"Buvez plus d'eau pendant la journée",
		"Ajoutez une portion de fruits",
		"Incluez plus de fibres dans le prochain repas",
	},
	i18n.German: {
		"Trinken Sie tagsüber mehr Wasser",
		"Fügen Sie eine Portion Obst hinzu",
		"Nehmen Sie mehr Ballaststoffe in die nächste Mahlzeit auf",
	},
}
