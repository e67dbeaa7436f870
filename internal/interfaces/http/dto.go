package http

import (
	"time"

	"github.com/IkkkaM/PersonManagement/internal/domain"
)

type PhoneNumberResponse struct {
	ID     int    `json:"id"`
	Type   int    `json:"type"`
	Number string `json:"number"`
}

type ConnectionResponse struct {
	ConnectedPersonID int    `json:"connectedPersonId"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	PersonalNumber    string `json:"personalNumber"`
	ConnectionType    string `json:"connectionType"`
}

// PersonResponse is the full person view returned by the detail, create
// and update endpoints.
type PersonResponse struct {
	ID             int                   `json:"id"`
	FirstName      string                `json:"firstName"`
	LastName       string                `json:"lastName"`
	Gender         int                   `json:"gender"`
	PersonalNumber string                `json:"personalNumber"`
	DateOfBirth    time.Time             `json:"dateOfBirth"`
	Age            int                   `json:"age"`
	CityID         int                   `json:"cityId"`
	CityName       string                `json:"cityName,omitempty"`
	ImageURL       string                `json:"imageUrl,omitempty"`
	PhoneNumbers   []PhoneNumberResponse `json:"phoneNumbers"`
	Connections    []ConnectionResponse  `json:"connections"`
}

// PersonListResponse is the trimmed person view used by search results.
type PersonListResponse struct {
	ID             int       `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Gender         int       `json:"gender"`
	PersonalNumber string    `json:"personalNumber"`
	DateOfBirth    time.Time `json:"dateOfBirth"`
	CityName       string    `json:"cityName,omitempty"`
	ImageURL       string    `json:"imageUrl,omitempty"`
}

type PagedResponse[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

type ConnectionReportItemResponse struct {
	PersonID         int            `json:"personId"`
	FirstName        string         `json:"firstName"`
	LastName         string         `json:"lastName"`
	ConnectionCounts map[string]int `json:"connectionCounts"`
	TotalConnections int            `json:"totalConnections"`
}

// imageURLFunc resolves a stored image path to a public URL. An empty
// path resolves to an empty URL.
type imageURLFunc func(path string) string

func toPersonResponse(p *domain.Person, imageURL imageURLFunc) PersonResponse {
	resp := PersonResponse{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Gender:         int(p.Gender),
		PersonalNumber: p.PersonalNumber,
		DateOfBirth:    p.DateOfBirth,
		Age:            p.Age(),
		CityID:         p.CityID,
		PhoneNumbers:   make([]PhoneNumberResponse, 0, len(p.PhoneNumbers)),
		Connections:    make([]ConnectionResponse, 0, len(p.Connections)),
	}
	if p.City != nil {
		resp.CityName = p.City.Name
	}
	if p.ImagePath != nil && *p.ImagePath != "" {
		resp.ImageURL = imageURL(*p.ImagePath)
	}
	for _, phone := range p.PhoneNumbers {
		resp.PhoneNumbers = append(resp.PhoneNumbers, PhoneNumberResponse{
			ID:     phone.ID,
			Type:   int(phone.Type),
			Number: phone.Number,
		})
	}
	for _, conn := range p.Connections {
		item := ConnectionResponse{
			ConnectedPersonID: conn.ConnectedPersonID,
			ConnectionType:    conn.ConnectionType.String(),
		}
		if conn.ConnectedPerson != nil {
			item.FirstName = conn.ConnectedPerson.FirstName
			item.LastName = conn.ConnectedPerson.LastName
			item.PersonalNumber = conn.ConnectedPerson.PersonalNumber
		}
		resp.Connections = append(resp.Connections, item)
	}
	return resp
}

func toPersonListResponse(p domain.Person, imageURL imageURLFunc) PersonListResponse {
	resp := PersonListResponse{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Gender:         int(p.Gender),
		PersonalNumber: p.PersonalNumber,
		DateOfBirth:    p.DateOfBirth,
	}
	if p.City != nil {
		resp.CityName = p.City.Name
	}
	if p.ImagePath != nil && *p.ImagePath != "" {
		resp.ImageURL = imageURL(*p.ImagePath)
	}
	return resp
}

func toPagedResponse(paged *domain.Paged[domain.Person], imageURL imageURLFunc) PagedResponse[PersonListResponse] {
	items := make([]PersonListResponse, 0, len(paged.Items))
	for _, p := range paged.Items {
		items = append(items, toPersonListResponse(p, imageURL))
	}

	totalPages := 0
	if paged.PageSize > 0 {
		totalPages = (paged.TotalCount + paged.PageSize - 1) / paged.PageSize
	}

	return PagedResponse[PersonListResponse]{
		Items:      items,
		TotalCount: paged.TotalCount,
		PageNumber: paged.PageNumber,
		PageSize:   paged.PageSize,
		TotalPages: totalPages,
	}
}

func toReportResponse(items []domain.PersonConnectionReportItem) []ConnectionReportItemResponse {
	report := make([]ConnectionReportItemResponse, 0, len(items))
	for _, item := range items {
		counts := make(map[string]int, len(item.ConnectionCounts))
		for connectionType, count := range item.ConnectionCounts {
			counts[connectionType.String()] = count
		}
		report = append(report, ConnectionReportItemResponse{
			PersonID:         item.PersonID,
			FirstName:        item.FirstName,
			LastName:         item.LastName,
			ConnectionCounts: counts,
			TotalConnections: item.TotalConnections(),
		})
	}
	return report
}
