package rail

// DefaultOperator se retorna cuando OperatorFor no encuentra corredor.
// No debería ocurrir si la consulta fue precedida por HasCorridor.
const DefaultOperator = "TAZARA Railway"

// Corridor es un par origen-destino con servicio de tren (no dirigido)
type Corridor struct {
	EndpointA string `json:"endpoint_a"`
	EndpointB string `json:"endpoint_b"`
	Operator  string `json:"operator"`
}

// Connects indica si el corredor une a y b, en cualquier orden
func (c Corridor) Connects(a, b string) bool {
	return (c.EndpointA == a && c.EndpointB == b) || (c.EndpointA == b && c.EndpointB == a)
}

// Table es una tabla estática de corredores, de solo lectura
type Table struct {
	corridors []Corridor
}

// NewTable crea una tabla a partir de una lista de corredores
func NewTable(corridors []Corridor) *Table {
	cp := make([]Corridor, len(corridors))
	copy(cp, corridors)
	return &Table{corridors: cp}
}

var defaultTable = NewTable([]Corridor{
	{EndpointA: "Dar es Salaam", EndpointB: "Mbeya", Operator: "TAZARA Railway"},
	{EndpointA: "Dar es Salaam", EndpointB: "Kigoma", Operator: "TRC"},
	{EndpointA: "Dar es Salaam", EndpointB: "Mwanza", Operator: "TRC"},
	{EndpointA: "Dodoma", EndpointB: "Dar es Salaam", Operator: "SGR"},
	{EndpointA: "Dar es Salaam", EndpointB: "Morogoro", Operator: "SGR"},
	{EndpointA: "Morogoro", EndpointB: "Dodoma", Operator: "SGR"},
})

// Default retorna los corredores ferroviarios conocidos de Tanzania
func Default() *Table {
	return defaultTable
}

func (t *Table) find(a, b string) (Corridor, bool) {
	for _, c := range t.corridors {
		if c.Connects(a, b) {
			return c, true
		}
	}
	return Corridor{}, false
}

// HasCorridor indica si existe servicio de tren entre a y b
func (t *Table) HasCorridor(a, b string) bool {
	_, ok := t.find(a, b)
	return ok
}

// OperatorFor retorna el operador del corredor entre a y b
func (t *Table) OperatorFor(a, b string) string {
	if c, ok := t.find(a, b); ok {
		return c.Operator
	}
	return DefaultOperator
}

// Corridors retorna una copia de la tabla
func (t *Table) Corridors() []Corridor {
	out := make([]Corridor, len(t.corridors))
	copy(out, t.corridors)
	return out
}
