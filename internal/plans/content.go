package plans

import "github.com/cardiovital/server/internal/i18n"

type planText struct {
	name     string
	tagline  string
	period   string
	features []string
}

var planCopy = map[i18n.Language]map[string]planText{
	i18n.Portuguese: {
		Essencial: {
			name:    "Essencial",
			tagline: "Comece a cuidar do seu coração",
			period:  "/mês",
			features: []string{
				"Controle de medicamentos",
				"Registro de doses tomadas",
				"Perfil de saúde",
			},
		},
		Premium: {
			name:    "Premium",
			tagline: "Acompanhamento completo",
			period:  "/mês",
			features: []string{
				"Tudo do Essencial",
				"Exercícios personalizados",
				"Plano alimentar",
				"Análise de refeições",
				"Coach de saúde 24h",
				"Lembretes de medicamentos",
			},
		},
		Elite: {
			name:    "Elite",
			tagline: "Experiência exclusiva",
			period:  "/mês",
			features: []string{
				"Tudo do Premium",
				"Relatórios de adesão",
				"Suporte prioritário",
			},
		},
	},
	i18n.English: {
		Essencial: {
			name:    "Essential",
			tagline: "Start caring for your heart",
			period:  "/month",
			features: []string{
				"Medication tracking",
				"Taken dose log",
				"Health profile",
			},
		},
		Premium: {
			name:    "Premium",
			tagline: "Complete follow-up",
			period:  "/month",
			features: []string{
				"Everything in Essential",
				"Personalized exercises",
				"Diet plan",
				"Meal analysis",
				"24h health coach",
				"Medication reminders",
			},
		},
		Elite: {
			name:    "Elite",
			tagline: "Exclusive experience",
			period:  "/month",
			features: []string{
				"Everything in Premium",
				"Adherence reports",
				"Priority support",
			},
		},
	},
	i18n.Dutch: {
		Essencial: {
			name:    "Essentieel",
			tagline: "Begin met de zorg voor je hart",
			period:  "/maand",
			features: []string{
				"Medicatiebeheer",
				"Logboek van ingenomen doses",
				"Gezondheidsprofiel",
			},
		},
		Premium: {
			name:    "Premium",
			tagline: "Volledige begeleiding",
			period:  "/maand",
			features: []string{
				"Alles van Essentieel",
				"Persoonlijke oefeningen",
				"Voedingsplan",
				"Maaltijdanalyse",
				"24-uurs gezondheidscoach",
				"Medicatieherinneringen",
			},
		},
		Elite: {
			name:    "Elite",
			tagline: "Exclusieve ervaring",
			period:  "/maand",
			features: []string{
				"Alles van Premium",
				"Therapietrouwrapporten",
				"Prioriteitsondersteuning",
			},
		},
	},
	i18n.French: {
		Essencial: {
			name:    "Essentiel",
			tagline: "Commencez à prendre soin de votre cœur",
			period:  "/mois",
			features: []string{
				"Suivi des médicaments",
				"Journal des prises",
				"Profil de santé",
			},
		},
		Premium: {
			name:    "Premium",
			tagline: "Suivi complet",
			period:  "/mois",
			features: []string{
				"Tout l'Essentiel",
				"Exercices personnalisés",
				"Plan alimentaire",
				"Analyse des repas",
				"Coach santé 24h",
				"Rappels de médicaments",
			},
		},
		Elite: {
			name:    "Élite",
			tagline: "Expérience exclusive",
			period:  "/mois",
			features: []string{
				"Tout le Premium",
				"Rapports d'observance",
				"Assistance prioritaire",
			},
		},
	},
	i18n.German: {
		Essencial: {
			name:    "Essenziell",
			tagline: "Beginnen Sie, auf Ihr Herz zu achten",
			period:  "/Monat",
			features: []string{
				"Medikamentenverwaltung",
				"Einnahmeprotokoll",
				"Gesundheitsprofil",
			},
		},
		Premium: {
			name:    "Premium",
			tagline: "Umfassende Betreuung",
			period:  "/Monat",
			features: []string{
				"Alles aus Essenziell",
				"Personalisierte Übungen",
				"Ernährungsplan",
				"Mahlzeitenanalyse",
				"24h-Gesundheitscoach",
				"Medikamenten-Erinnerungen",
			},
		},
		Elite: {
			name:    "Elite",
			tagline: "Exklusives Erlebnis",
			period:  "/Monat",
			features: []string{
				"Alles aus Premium",
				"Therapietreue-Berichte",
				"Bevorzugter Support",
			},
		},
	},
}
