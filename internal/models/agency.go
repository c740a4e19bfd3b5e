package models

// Agency - закрытое перечисление из семи категорий реагирующих служб
type Agency string

const (
	AgencyLaw       Agency = "law"       // Полиция
	AgencyFire      Agency = "fire"      // Пожарно-спасательная служба
	AgencyEMS       Agency = "ems"       // Скорая помощь
	AgencyHospitals Agency = "hospitals" // Больницы / приемные отделения
	AgencyUtilities Agency = "utilities" // Коммунальные службы
	AgencyTransport Agency = "transport" // Транспортное управление
	AgencyNGOs      Agency = "ngos"      // Гуманитарные организации
)

// AllAgencies - полный список допустимых служб в фиксированном порядке отображения
var AllAgencies = []Agency{
	AgencyLaw,
	AgencyFire,
	AgencyEMS,
	AgencyHospitals,
	AgencyUtilities,
	AgencyTransport,
	AgencyNGOs,
}

var agencyLabels = map[Agency]string{
	AgencyLaw:       "Police",
	AgencyFire:      "Fire & Rescue",
	AgencyEMS:       "EMS (Ambulance)",
	AgencyHospitals: "Hospitals",
	AgencyUtilities: "Public Works / Utilities",
	AgencyTransport: "Transportation Authority",
	AgencyNGOs:      "Relief & NGOs",
}

// Valid сообщает, входит ли служба в допустимое перечисление
func (a Agency) Valid() bool {
	_, ok := agencyLabels[a]
	return ok
}

// Label возвращает человекочитаемое название службы
func (a Agency) Label() string {
	if label, ok := agencyLabels[a]; ok {
		return label
	}
	return string(a)
}
