package repository

import (
	"github.com/vfg2006/campaign-leads-api/infrastructure/database/memory"
	"github.com/vfg2006/campaign-leads-api/internal/domain"
)

//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

type ReportRepository interface {
	ListReports() []*domain.AnalysisReport
	GetReportByID(reportID string) (*domain.AnalysisReport, bool)
	// AddReport insere o relatório no início da lista
	AddReport(report *domain.AnalysisReport)
}

type reportRepository struct {
	conn *memory.Connection
}

func NewReportRepository(conn *memory.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

func (r *reportRepository) ListReports() []*domain.AnalysisReport {
	var reports []*domain.AnalysisReport
	r.conn.View(func(d *memory.Dataset) {
		reports = make([]*domain.AnalysisReport, 0, len(d.Reports))
		for _, rep := range d.Reports {
			reports = append(reports, rep.Clone())
		}
	})
	return reports
}

func (r *reportRepository) GetReportByID(reportID string) (*domain.AnalysisReport, bool) {
	var report *domain.AnalysisReport
	r.conn.View(func(d *memory.Dataset) {
		for _, rep := range d.Reports {
			if rep.ID == reportID {
				report = rep.Clone()
				return
			}
		}
	})
	return report, report != nil
}

func (r *reportRepository) AddReport(report *domain.AnalysisReport) {
	stored := report.Clone()
	r.conn.Update(func(d *memory.Dataset) {
		d.Reports = append([]*domain.AnalysisReport{stored}, d.Reports...)
	})
}
