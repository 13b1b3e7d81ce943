package ingest

import "strings"

// Field names a canonical ticket attribute that spreadsheet headers map onto.
type Field string

const (
	FieldTicketID         Field = "ticket_id"
	FieldRequestTime      Field = "request_time"
	FieldCloseTime        Field = "close_time"
	FieldInitiator        Field = "initiator"
	FieldAffiliate        Field = "affiliate"
	FieldCluster          Field = "cluster"
	FieldService          Field = "service"
	FieldCategory         Field = "category"
	FieldSubCategory      Field = "sub_category"
	FieldThirdLvlCategory Field = "third_lvl_category"
	FieldTitle            Field = "title"
	FieldDescription      Field = "description"
	FieldName             Field = "name"
	FieldSupportGroup     Field = "support_group"
	FieldProcess          Field = "process"
	FieldPriority         Field = "priority"
	FieldStatus           Field = "status"
	FieldResolution       Field = "resolution"
	FieldRootCause        Field = "root_cause"
	FieldIncidentOrigin   Field = "incident_origin"
	FieldSLAIndicator     Field = "sla_indicator"
)

// headerSynonyms maps normalized header spellings to canonical fields.
// Keys are lowercased with hyphens/underscores folded to single spaces.
var headerSynonyms = map[string]Field{
	"ticket id":    FieldTicketID,
	"ticketid":     FieldTicketID,
	"ticket no":    FieldTicketID,
	"ticket ref":   FieldTicketID,
	"incident id":  FieldTicketID,
	"reference":    FieldTicketID,
	"request time": FieldRequestTime,
	"request date": FieldRequestTime,
	"requesttime":  FieldRequestTime,
	"open time":    FieldRequestTime,
	"opened":       FieldRequestTime,
	"created":      FieldRequestTime,
	"created at":   FieldRequestTime,
	"date created": FieldRequestTime,
	"report time":  FieldRequestTime,

	"close time":      FieldCloseTime,
	"close date":      FieldCloseTime,
	"closed":          FieldCloseTime,
	"closed at":       FieldCloseTime,
	"resolved at":     FieldCloseTime,
	"resolution time": FieldCloseTime,

	"initiator":    FieldInitiator,
	"requested by": FieldInitiator,
	"reporter":     FieldInitiator,

	"affiliate": FieldAffiliate,
	"country":   FieldAffiliate,
	"entity":    FieldAffiliate,

	"cluster": FieldCluster,
	"region":  FieldCluster,

	"service":     FieldService,
	"application": FieldService,
	"system":      FieldService,

	"category": FieldCategory,

	"sub category": FieldSubCategory,
	"subcategory":  FieldSubCategory,

	"third lvl category":   FieldThirdLvlCategory,
	"third level category": FieldThirdLvlCategory,
	"3rd level category":   FieldThirdLvlCategory,
	"3rd lvl category":     FieldThirdLvlCategory,

	"title":   FieldTitle,
	"subject": FieldTitle,
	"summary": FieldTitle,

	"description": FieldDescription,
	"details":     FieldDescription,

	"name":      FieldName,
	"full name": FieldName,

	"support group":  FieldSupportGroup,
	"assigned group": FieldSupportGroup,
	"resolver group": FieldSupportGroup,

	"process":     FieldProcess,
	"record type": FieldProcess,

	"priority": FieldPriority,
	"severity": FieldPriority,
	"urgency":  FieldPriority,

	"status": FieldStatus,
	"state":  FieldStatus,

	"resolution":       FieldResolution,
	"resolution notes": FieldResolution,

	"root cause": FieldRootCause,
	"cause":      FieldRootCause,
	"rca":        FieldRootCause,

	"incident origin": FieldIncidentOrigin,
	"origin":          FieldIncidentOrigin,
	"source":          FieldIncidentOrigin,

	"sla indicator": FieldSLAIndicator,
	"sla":           FieldSLAIndicator,
	"sla met":       FieldSLAIndicator,
	"within sla":    FieldSLAIndicator,
}

// ColumnMap associates column positions in the source table with canonical
// fields. Columns whose headers are not recognized do not appear.
type ColumnMap map[int]Field

// Has reports whether any column maps to the given field.
func (m ColumnMap) Has(field Field) bool {
	for _, f := range m {
		if f == field {
			return true
		}
	}
	return false
}

// MapColumns resolves header strings to canonical fields using a
// case-insensitive, trimmed synonym table. Unrecognized headers are dropped.
// It returns a batch-fatal error message when neither a ticket_id column nor
// a request_time column is present.
func MapColumns(headers []string) (ColumnMap, []string) {
	mapping := make(ColumnMap, len(headers))
	for i, header := range headers {
		key := normalizeHeader(header)
		if key == "" {
			continue
		}
		if field, ok := headerSynonyms[key]; ok {
			mapping[i] = field
		}
	}

	if !mapping.Has(FieldTicketID) && !mapping.Has(FieldRequestTime) {
		return nil, []string{"missing required columns: no Ticket ID or Request Time column recognized in header row"}
	}
	return mapping, nil
}

func normalizeHeader(header string) string {
	key := strings.ToLower(strings.TrimSpace(header))
	key = strings.ReplaceAll(key, "-", " ")
	key = strings.ReplaceAll(key, "_", " ")
	return strings.Join(strings.Fields(key), " ")
}
