package v1

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
)

// decodePhoto разбирает фотографию из запроса: принимает data URL
// (data:image/jpeg;base64,...) или чистый base64. Возвращает байты и MIME-тип.
func decodePhoto(encoded string) ([]byte, string, error) {
	contentType := "image/jpeg"
	payload := encoded

	if strings.HasPrefix(encoded, "data:") {
		sep := strings.Index(encoded, ",")
		if sep < 0 {
			return nil, "", fmt.Errorf("malformed data URL")
		}
		meta := encoded[len("data:"):sep]
		payload = encoded[sep+1:]
		if ct, _, _ := strings.Cut(meta, ";"); ct != "" {
			contentType = ct
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 photo payload: %w", err)
	}
	return data, contentType, nil
}

// ModelToReportResponse преобразует доменную модель в DTO для ответа
func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:                model.ID,
		IncidentPhotoKey:  model.IncidentPhotoKey,
		ReporterPhotoKey:  model.ReporterPhotoKey,
		Latitude:          model.Latitude,
		Longitude:         model.Longitude,
		Governorate:       model.Governorate,
		District:          model.District,
		FullAddress:       model.FullAddress,
		Status:            model.Status,
		DispatchStatus:    model.DispatchStatus,
		DispatchID:        model.DispatchID,
		AmbulanceNotified: model.AmbulanceNotified,
		Notes:             model.Notes,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

// ModelsToReportResponses преобразует слайс моделей в слайс DTO.
// Ключи фотографий в списке опускаются.
func ModelsToReportResponses(reports []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, model := range reports {
		resp := ModelToReportResponse(model)
		resp.IncidentPhotoKey = ""
		resp.ReporterPhotoKey = ""
		responses[i] = resp
	}
	return responses
}

// AssignmentToResponse преобразует результат назначения в DTO
func AssignmentToResponse(a *service.Assignment) *AssignmentResponse {
	resp := &AssignmentResponse{
		DispatchID: a.Dispatch.ID,
		Station: StationSummary{
			ID:          a.Station.ID,
			Name:        a.Station.Name,
			Governorate: a.Station.Governorate,
			Address:     a.Station.Address,
			Phone:       a.Station.ContactPhone,
		},
		DistanceKm: a.DistanceKm,
		EtaMinutes: a.EtaMinutes,
	}
	if a.Ambulance != nil {
		resp.Ambulance = AmbulanceToSummary(a.Ambulance)
	}
	return resp
}

// AmbulanceToSummary преобразует машину в краткое DTO
func AmbulanceToSummary(a *models.Ambulance) *AmbulanceSummary {
	return &AmbulanceSummary{
		ID:            a.ID,
		VehicleNumber: a.VehicleNumber,
		DriverName:    a.DriverName,
		DriverPhone:   a.DriverPhone,
	}
}

// ModelToDispatchResponse преобразует доменную модель в DTO для ответа
func ModelToDispatchResponse(model *models.Dispatch) *DispatchResponse {
	return &DispatchResponse{
		ID:               model.ID,
		ReportID:         model.ReportID,
		StationID:        model.StationID,
		AmbulanceID:      model.AmbulanceID,
		ParamedicID:      model.ParamedicID,
		Status:           model.Status,
		Priority:         model.Priority,
		Timeline:         model.Timeline,
		DistanceKm:       model.DistanceKm,
		EstimatedArrival: model.EstimatedArrival,
		DriverNotes:      model.DriverNotes,
		CreatedAt:        model.CreatedAt,
	}
}

// ModelsToDispatchResponses преобразует слайс моделей в слайс DTO
func ModelsToDispatchResponses(dispatches []*models.Dispatch) []*DispatchResponse {
	responses := make([]*DispatchResponse, len(dispatches))
	for i, model := range dispatches {
		responses[i] = ModelToDispatchResponse(model)
	}
	return responses
}

// DetailToResponse преобразует детальную выборку в DTO для водителя
func DetailToResponse(d *service.DispatchDetail) *DispatchDetailResponse {
	resp := &DispatchDetailResponse{
		Dispatch: *ModelToDispatchResponse(d.Dispatch),
		Station: StationSummary{
			ID:          d.Station.ID,
			Name:        d.Station.Name,
			Governorate: d.Station.Governorate,
			Address:     d.Station.Address,
			Phone:       d.Station.ContactPhone,
		},
		Incident: IncidentInfo{
			Latitude:      d.Report.Latitude,
			Longitude:     d.Report.Longitude,
			Governorate:   d.Report.Governorate,
			District:      d.Report.District,
			FullAddress:   d.Report.FullAddress,
			Notes:         d.Report.Notes,
			IncidentPhoto: d.Report.IncidentPhotoKey,
			ReporterPhoto: d.Report.ReporterPhotoKey,
			ReportedAt:    d.Report.CreatedAt,
		},
	}
	if d.Ambulance != nil {
		resp.Ambulance = AmbulanceToSummary(d.Ambulance)
	}
	return resp
}

// DetailsToListResponse конвертирует набор детальных диспетчеризаций
// в ответ административного списка
func DetailsToListResponse(details []*service.DispatchDetail) *AdminDispatchListResponse {
	resp := &AdminDispatchListResponse{
		Dispatches: make([]DispatchDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Dispatches = append(resp.Dispatches, *DetailToResponse(d))
	}
	return resp
}

// DetailsToMapResponse конвертирует активные диспетчеризации в набор
// маркеров для карты реального времени
func DetailsToMapResponse(details []*service.DispatchDetail) *MapResponse {
	resp := &MapResponse{
		ActiveDispatches: make([]MapDispatchEntry, 0, len(details)),
	}
	for _, d := range details {
		entry := MapDispatchEntry{
			DispatchID: d.Dispatch.ID,
			Status:     d.Dispatch.Status,
			Incident: MapIncidentInfo{
				Latitude:    d.Report.Latitude,
				Longitude:   d.Report.Longitude,
				Governorate: d.Report.Governorate,
				District:    d.Report.District,
				ReportedAt:  d.Report.CreatedAt,
			},
			Station: MapStationInfo{
				Name:      d.Station.Name,
				Latitude:  d.Station.Latitude,
				Longitude: d.Station.Longitude,
			},
			DistanceKm:       d.Dispatch.DistanceKm,
			EstimatedArrival: d.Dispatch.EstimatedArrival,
		}
		if d.Ambulance != nil {
			entry.Ambulance = &MapAmbulanceInfo{
				VehicleNumber:     d.Ambulance.VehicleNumber,
				CurrentLatitude:   d.Ambulance.CurrentLatitude,
				CurrentLongitude:  d.Ambulance.CurrentLongitude,
				LocationUpdatedAt: d.Ambulance.LocationUpdatedAt,
			}
		}
		resp.ActiveDispatches = append(resp.ActiveDispatches, entry)
	}
	return resp
}

// DTOToStationModel преобразует DTO создания станции в доменную модель
func DTOToStationModel(dto CreateStationRequest) *models.Station {
	return &models.Station{
		Name:            dto.Name,
		Governorate:     dto.Governorate,
		District:        dto.District,
		Latitude:        dto.Latitude,
		Longitude:       dto.Longitude,
		Address:         dto.Address,
		ContactPhone:    dto.ContactPhone,
		TotalAmbulances: dto.TotalAmbulances,
	}
}

// ModelToStationResponse преобразует доменную модель в DTO для ответа
func ModelToStationResponse(model *models.Station) *StationResponse {
	return &StationResponse{
		ID:                  model.ID,
		Name:                model.Name,
		Governorate:         model.Governorate,
		District:            model.District,
		Latitude:            model.Latitude,
		Longitude:           model.Longitude,
		Address:             model.Address,
		ContactPhone:        model.ContactPhone,
		TotalAmbulances:     model.TotalAmbulances,
		AvailableAmbulances: model.AvailableAmbulances,
		IsActive:            model.IsActive,
		CreatedAt:           model.CreatedAt,
	}
}

// ModelsToStationResponses преобразует слайс моделей в слайс DTO
func ModelsToStationResponses(stations []*models.Station) []*StationResponse {
	responses := make([]*StationResponse, len(stations))
	for i, model := range stations {
		responses[i] = ModelToStationResponse(model)
	}
	return responses
}

// DTOToAmbulanceModel преобразует DTO создания машины в доменную модель
func DTOToAmbulanceModel(dto CreateAmbulanceRequest) *models.Ambulance {
	return &models.Ambulance{
		VehicleNumber: dto.VehicleNumber,
		StationID:     dto.StationID,
		DriverName:    dto.DriverName,
		DriverPhone:   dto.DriverPhone,
	}
}

// ModelToAmbulanceResponse преобразует доменную модель в DTO для ответа
func ModelToAmbulanceResponse(model *models.Ambulance) *AmbulanceResponse {
	return &AmbulanceResponse{
		ID:              model.ID,
		VehicleNumber:   model.VehicleNumber,
		StationID:       model.StationID,
		Status:          model.Status,
		DriverName:      model.DriverName,
		DriverPhone:     model.DriverPhone,
		CurrentReportID: model.CurrentReportID,
		CreatedAt:       model.CreatedAt,
	}
}

// ModelsToAmbulanceResponses преобразует слайс моделей в слайс DTO
func ModelsToAmbulanceResponses(ambulances []*models.Ambulance) []*AmbulanceResponse {
	responses := make([]*AmbulanceResponse, len(ambulances))
	for i, model := range ambulances {
		responses[i] = ModelToAmbulanceResponse(model)
	}
	return responses
}
