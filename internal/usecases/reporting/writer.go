package reporting

import "github.com/vfg2006/campaign-leads-api/internal/domain"

// TextWriter produz os textos livres de um relatório a partir do resumo calculado
type TextWriter interface {
	Insights(summary domain.ReportSummary) []string
	Recommendations(summary domain.ReportSummary) []string
}

// StaticTextWriter devolve sempre o mesmo texto, independente do resumo
type StaticTextWriter struct{}

func (StaticTextWriter) Insights(domain.ReportSummary) []string {
	return []string{
		"Les leads provenant de LinkedIn montrent un taux de conversion 2x supérieur",
		"Les campagnes envoyées en milieu de semaine obtiennent 30% d'engagement en plus",
		"La personnalisation par secteur d'activité améliore le taux de réponse de 45%",
	}
}

func (StaticTextWriter) Recommendations(domain.ReportSummary) []string {
	return []string{
		"Optimiser les heures d'envoi pour augmenter les taux d'ouverture",
		"Segmenter davantage les audiences froides pour améliorer l'engagement",
		"Tester de nouveaux formats de contenu pour les leads warm",
		"Implémenter un système de lead scoring plus granulaire",
	}
}
