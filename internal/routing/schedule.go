package routing

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Horarios de salida habituales de los buses interurbanos
var commonDepartures = []string{"06:00", "07:30", "09:00", "14:00", "15:30", "18:00", "20:00", "22:00"}

// Salidas fijas de tren
var trainDepartures = []string{"08:00", "16:00"}

// departureTimes elige count horarios recorriendo la grilla de forma cíclica
// y los retorna ordenados. Si count supera la grilla, se repiten horarios.
func departureTimes(count int) []string {
	times := make([]string, 0, count)
	for i := 0; i < count; i++ {
		times = append(times, commonDepartures[i%len(commonDepartures)])
	}
	sort.Strings(times)
	return times
}

// clockMinutes convierte "HH:MM" a minutos desde medianoche
func clockMinutes(hhmm string) (int, error) {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0, fmt.Errorf("hora inválida %q", hhmm)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("hora inválida %q", hhmm)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("minutos inválidos %q", hhmm)
	}
	return hours*60 + minutes, nil
}

// arrivalTime suma la duración a la salida, módulo 24 horas
func arrivalTime(departure string, durationHours float64) string {
	dep, err := clockMinutes(departure)
	if err != nil {
		return departure
	}
	total := int(math.Floor(float64(dep) + durationHours*60))
	total %= 24 * 60
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// formatDuration genera la etiqueta "<H>h <M>m"
func formatDuration(hours float64) string {
	h := int(math.Floor(hours))
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// ParseDurationLabel re-deriva las horas desde una etiqueta "<H>h <M>m"
func ParseDurationLabel(label string) (float64, error) {
	var h, m int
	if _, err := fmt.Sscanf(label, "%dh %dm", &h, &m); err != nil {
		return 0, fmt.Errorf("duración inválida %q: %w", label, err)
	}
	return float64(h) + float64(m)/60, nil
}

// durationSortKey retorna solo la parte entera de horas de la etiqueta.
// Los minutos no participan del orden: "5h 10m" y "5h 50m" empatan.
func durationSortKey(label string) int {
	digits := label
	if i := strings.IndexFunc(label, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
		digits = label[:i]
	}
	h, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return h
}
