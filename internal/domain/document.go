package domain

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Nomes dos documentos brutos carregados pelo dashboard
const (
	UserInsightsDocument      = "user_insights"
	DemographicsCityDocument  = "demographics_city"
	DemographicsStateDocument = "demographics_state"
)

// Métricas de demografia lidas dos documentos
const (
	AudienceCityMetric  = "audience_city"
	AudienceStateMetric = "audience_state"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidDocument  = errors.New("invalid document")
)

// RawField é um par chave/valor de um objeto JSON bruto
type RawField struct {
	Key   string
	Value any
}

// RawRecord é um objeto JSON que preserva a ordem original dos campos
type RawRecord []RawField

// Get retorna o primeiro valor associado à chave
func (r RawRecord) Get(key string) (any, bool) {
	for _, field := range r {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

func (r *RawRecord) UnmarshalJSON(data []byte) error {
	iter := json.BorrowIterator(data)
	defer json.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return fmt.Errorf("raw record: expected object, got %s", string(data))
	}

	record := make(RawRecord, 0)
	position := make(map[string]int)
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		value := it.Read()

		// Chave repetida mantém a primeira posição e o último valor
		if i, ok := position[key]; ok {
			record[i].Value = value
			return it.Error == nil
		}
		position[key] = len(record)
		record = append(record, RawField{Key: key, Value: value})
		return it.Error == nil
	})
	if iter.Error != nil {
		return fmt.Errorf("raw record: %w", iter.Error)
	}

	*r = record
	return nil
}

// InsightsDocument é o documento de insights do usuário: {"data": [{date, ...métricas}]}
type InsightsDocument struct {
	Data []RawRecord `json:"data"`
}

// DemographicsDocument segue o formato da Graph API para métricas de audiência
type DemographicsDocument struct {
	Data []DemographicMetric `json:"data"`
}

type DemographicMetric struct {
	Name        string             `json:"name"`
	Period      string             `json:"period,omitempty"`
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Values      []DemographicValue `json:"values"`
}

type DemographicValue struct {
	Value   CategoryValues `json:"value"`
	EndTime string         `json:"end_time,omitempty"`
}

// CategoryValues decodifica um objeto {categoria: percentual} mantendo a ordem das chaves
type CategoryValues []CategoryCount

func (c *CategoryValues) UnmarshalJSON(data []byte) error {
	iter := json.BorrowIterator(data)
	defer json.ReturnIterator(iter)

	values := make(CategoryValues, 0)
	position := make(map[string]int)
	iter.ReadMapCB(func(it *jsoniter.Iterator, category string) bool {
		if it.WhatIsNext() != jsoniter.NumberValue {
			it.ReportError("category values", fmt.Sprintf("percentage of %q is not a number", category))
			return false
		}
		percentage := it.ReadFloat64()

		// Chave repetida mantém a primeira posição e o último valor
		if i, ok := position[category]; ok {
			values[i].Percentage = percentage
			return true
		}
		position[category] = len(values)
		values = append(values, CategoryCount{Category: category, Percentage: percentage})
		return true
	})
	if iter.Error != nil {
		return fmt.Errorf("category values: %w", iter.Error)
	}

	*c = values
	return nil
}

// DecodeInsightsDocument decodifica o documento de insights
func DecodeInsightsDocument(data []byte) (*InsightsDocument, error) {
	doc := &InsightsDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// DecodeDemographicsDocument decodifica um documento de demografia
func DecodeDemographicsDocument(data []byte) (*DemographicsDocument, error) {
	doc := &DemographicsDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}
