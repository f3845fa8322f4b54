package service

import "github.com/shenikar/ambulance_dispatch_system/internal/models"

// propagation описывает, какие денормализованные статусы должны получить
// Report и Ambulance после перехода диспетчеризации в данный статус
type propagation struct {
	ReportStatus         models.ReportStatus
	ReportDispatchStatus models.DispatchStatus
	AmbulanceStatus      models.AmbulanceStatus
	// ReleaseCapacity - вернуть машину станции (release + очистка привязки)
	ReleaseCapacity bool
}

// Таблица переноса статусов. Отчет помечается completed уже при прибытии
// бригады на место (arrived), до завершения самой диспетчеризации - внешние
// потребители статуса отчета зависят от этого порядка, не менять.
var propagationTable = map[models.DispatchStatus]propagation{
	models.DispatchDispatched: {
		ReportStatus:         models.ReportDispatched,
		ReportDispatchStatus: models.DispatchDispatched,
		AmbulanceStatus:      models.AmbulanceDispatched,
	},
	models.DispatchAccepted: {
		ReportStatus:         models.ReportDispatched,
		ReportDispatchStatus: models.DispatchDispatched,
		AmbulanceStatus:      models.AmbulanceDispatched,
	},
	models.DispatchEnRoute: {
		ReportStatus:         models.ReportDispatched,
		ReportDispatchStatus: models.DispatchEnRoute,
		AmbulanceStatus:      models.AmbulanceEnRoute,
	},
	models.DispatchArrived: {
		ReportStatus:         models.ReportCompleted,
		ReportDispatchStatus: models.DispatchArrived,
		AmbulanceStatus:      models.AmbulanceAtScene,
	},
	models.DispatchCompleted: {
		ReportStatus:         models.ReportCompleted,
		ReportDispatchStatus: models.DispatchCompleted,
		AmbulanceStatus:      models.AmbulanceAvailable,
		ReleaseCapacity:      true,
	},
	models.DispatchCancelled: {
		ReportStatus:         models.ReportCancelled,
		ReportDispatchStatus: models.DispatchCancelled,
		AmbulanceStatus:      models.AmbulanceAvailable,
		ReleaseCapacity:      true,
	},
}

// propagationFor возвращает правила переноса для статуса диспетчеризации
func propagationFor(status models.DispatchStatus) (propagation, bool) {
	p, ok := propagationTable[status]
	return p, ok
}
