// Package routing реализует детерминированную маршрутизацию инцидентов
// по реагирующим службам. Движок чистый: без состояния, без ввода-вывода,
// без ошибок - отсутствующие поля всегда трактуются как "условие не выполнено".
package routing

import "github.com/shenikar/crisis_awareness_system/internal/models"

// AgencySet - множество служб, назначенных инциденту
type AgencySet map[models.Agency]struct{}

// Has сообщает, входит ли служба в множество
func (s AgencySet) Has(a models.Agency) bool {
	_, ok := s[a]
	return ok
}

func (s AgencySet) add(agencies ...models.Agency) {
	for _, a := range agencies {
		s[a] = struct{}{}
	}
}

// List возвращает множество как срез в фиксированном порядке отображения
func (s AgencySet) List() []models.Agency {
	out := make([]models.Agency, 0, len(s))
	for _, a := range models.AllAgencies {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// facts - нормализованный снимок полей инцидента, участвующих в правилах.
// Подстановка значений по умолчанию выполняется здесь один раз,
// а не в каждом предикате.
type facts struct {
	kind     models.IncidentKind
	severity models.Severity

	injured   int
	lanes     int
	displaced int

	roadClosed        bool
	gasLeak           bool
	powerOutage       bool
	waterMainBreak    bool
	downedLines       bool
	transitDisruption bool
	medicalNeed       bool
	emsInbound        bool
	massCasualty      bool
	expectedSurge     bool
	shelterNeeded     bool
}

func normalize(inc *models.Incident) facts {
	f := facts{
		kind:              inc.Kind(),
		severity:          inc.SeverityLevel(),
		roadClosed:        inc.RoadClosed,
		gasLeak:           inc.GasLeak,
		powerOutage:       inc.PowerOutage,
		waterMainBreak:    inc.WaterMainBreak,
		downedLines:       inc.DownedLines,
		transitDisruption: inc.TransitDisruption,
		medicalNeed:       inc.MedicalNeed,
		emsInbound:        inc.EMSInbound,
		massCasualty:      inc.MassCasualty,
		expectedSurge:     inc.ExpectedSurge,
		shelterNeeded:     inc.ShelterNeeded,
	}
	if inc.InjuredCount != nil {
		f.injured = *inc.InjuredCount
	}
	if inc.LanesBlocked != nil {
		f.lanes = *inc.LanesBlocked
	}
	if inc.DisplacedPeople != nil {
		f.displaced = *inc.DisplacedPeople
	}
	return f
}

func (f facts) crimeKind() bool {
	switch f.kind {
	case models.KindAssault, models.KindRobbery, models.KindRiot, models.KindTheft:
		return true
	}
	return false
}

func (f facts) fireKind() bool {
	switch f.kind {
	case models.KindFire, models.KindVehicleFire, models.KindSmoke,
		models.KindHazmat, models.KindCollapse, models.KindRescue:
		return true
	}
	return false
}

func (f facts) crashKind() bool {
	return f.kind == models.KindAccident || f.kind == models.KindCrash
}

func (f facts) disasterKind() bool {
	switch f.kind {
	case models.KindFlood, models.KindEarthquake, models.KindWildfire, models.KindStorm:
		return true
	}
	return false
}

func (f facts) medicalResponse() bool {
	return f.injured > 0 || f.medicalNeed || f.massCasualty
}

func (f facts) hospitalNotice() bool {
	return f.emsInbound || f.injured > 0 || f.massCasualty || f.expectedSurge
}

func (f facts) infrastructureHit() bool {
	return f.gasLeak || f.powerOutage || f.waterMainBreak || f.downedLines
}

func (f facts) trafficImpact() bool {
	return f.lanes > 0 || f.roadClosed || f.transitDisruption
}

func (f facts) populationImpact() bool {
	return f.shelterNeeded || f.displaced > 50 ||
		(f.kind == models.KindFlood && f.severity != models.SeverityLow)
}

// RouteAgencies вычисляет множество служб, реагирующих на инцидент.
// Результат - чистая функция полей самого инцидента: один и тот же инцидент
// всегда дает одно и то же множество. Явный список agencyTargets полностью
// обходит вычисление правил.
func RouteAgencies(inc *models.Incident) AgencySet {
	set := make(AgencySet)

	if inc.AgencyTargets != nil {
		for _, a := range inc.AgencyTargets {
			if a.Valid() {
				set.add(a)
			}
		}
		return set
	}

	f := normalize(inc)

	// Фаза 1: независимые предикаты, каждый только добавляет службы
	if f.crimeKind() {
		set.add(models.AgencyLaw)
	}
	if f.fireKind() {
		set.add(models.AgencyFire)
	}
	if f.crashKind() {
		set.add(models.AgencyLaw, models.AgencyTransport)
	}
	if f.disasterKind() {
		set.add(models.AgencyFire, models.AgencyUtilities, models.AgencyLaw)
	}
	if f.medicalResponse() {
		set.add(models.AgencyEMS)
	}
	if f.hospitalNotice() {
		set.add(models.AgencyHospitals)
	}
	if f.infrastructureHit() {
		set.add(models.AgencyUtilities)
	}
	if f.trafficImpact() {
		set.add(models.AgencyTransport)
	}
	if f.populationImpact() {
		set.add(models.AgencyNGOs)
	}

	// Фаза 2: производные правила поверх базового множества.
	// Политика периметра: пожарные и коммунальные службы работают
	// под полицейским оцеплением.
	if (set.Has(models.AgencyFire) || set.Has(models.AgencyUtilities)) && !set.Has(models.AgencyLaw) {
		set.add(models.AgencyLaw)
	}

	for a := range set {
		if !a.Valid() {
			delete(set, a)
		}
	}

	return set
}

// RouteTrace возвращает человекочитаемое объяснение решения маршрутизации:
// по одному фиксированному предложению на сработавший предикат, в порядке
// правил. Трасса справочная - множество служб по ней не восстанавливается.
func RouteTrace(inc *models.Incident) []string {
	f := normalize(inc)
	out := make([]string, 0, 4)

	if f.fireKind() {
		out = append(out, "Type indicates Fire & Rescue as primary.")
	}
	if f.crimeKind() {
		out = append(out, "Type indicates Police for scene safety.")
	}
	if f.crashKind() {
		out = append(out, "Crash: Police + Transportation for traffic control.")
	}
	if f.disasterKind() {
		out = append(out, "Disaster type: add Utilities (infrastructure) & Police (perimeter).")
	}
	if f.injured > 0 {
		out = append(out, "Injuries present → EMS & Hospitals.")
	}
	if f.emsInbound {
		out = append(out, "EMS inbound notification → Hospitals.")
	}
	if f.lanes > 0 {
		out = append(out, "Lanes blocked → Transportation Authority.")
	}
	if f.gasLeak {
		out = append(out, "Gas leak flag → Utilities & Fire.")
	}
	if f.powerOutage || f.waterMainBreak || f.downedLines {
		out = append(out, "Infrastructure outage → Utilities.")
	}
	if f.shelterNeeded || f.displaced > 50 {
		out = append(out, "Population impact → Relief & NGOs.")
	}

	if len(out) == 0 {
		return []string{"Default routing policy applied."}
	}
	return out
}
