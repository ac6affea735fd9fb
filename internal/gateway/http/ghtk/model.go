package ghtk

import "shipping/internal/dto"

type registerRequest struct {
	Order    orderPayload     `json:"order"`
	Products []productPayload `json:"products"`
}

type orderPayload struct {
	ID           string  `json:"id"`
	PickName     string  `json:"pick_name"`
	PickAddress  string  `json:"pick_address"`
	PickProvince string  `json:"pick_province"`
	PickDistrict string  `json:"pick_district"`
	PickWard     string  `json:"pick_ward"`
	PickTel      string  `json:"pick_tel"`
	Name         string  `json:"name"`
	Tel          string  `json:"tel"`
	Address      string  `json:"address"`
	Province     string  `json:"province"`
	District     string  `json:"district"`
	Ward         string  `json:"ward"`
	Hamlet       string  `json:"hamlet"`
	IsFreeship   string  `json:"is_freeship"`
	PickMoney    int64   `json:"pick_money"`
	Value        int64   `json:"value"`
	Transport    string  `json:"transport"`
	PickOption   string  `json:"pick_option"`
	WeightOption string  `json:"weight_option"`
	TotalWeight  float64 `json:"total_weight"`
}

type productPayload struct {
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Quantity    int     `json:"quantity"`
	ProductCode string  `json:"product_code"`
}

type registerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Order   struct {
		PartnerID  string            `json:"partner_id"`
		Label      string            `json:"label"`
		TrackingID dto.CarrierStatus `json:"tracking_id"`
		StatusID   dto.CarrierStatus `json:"status_id"`
	} `json:"order"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Order   struct {
		LabelID   string            `json:"label_id"`
		PartnerID string            `json:"partner_id"`
		Status    dto.CarrierStatus `json:"status"`
	} `json:"order"`
}
