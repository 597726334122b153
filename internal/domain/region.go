package domain

// Region representa uma unidade federativa do Brasil
type Region struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// BrazilStates é a tabela fixa de estados, na ordem usada pelo dashboard.
// Os códigos seguem a propriedade "sigla" do GeoJSON de estados.
var BrazilStates = []Region{
	{Name: "Acre", Code: "AC"},
	{Name: "Alagoas", Code: "AL"},
	{Name: "Amapá", Code: "AP"},
	{Name: "Amazonas", Code: "AM"},
	{Name: "Bahia", Code: "BA"},
	{Name: "Ceará", Code: "CE"},
	{Name: "Distrito Federal", Code: "DF"},
	{Name: "Espírito Santo", Code: "ES"},
	{Name: "Goiás", Code: "GO"},
	{Name: "Maranhão", Code: "MA"},
	{Name: "Mato Grosso", Code: "MT"},
	{Name: "Mato Grosso do Sul", Code: "MS"},
	{Name: "Minas Gerais", Code: "MG"},
	{Name: "Pará", Code: "PA"},
	{Name: "Paraíba", Code: "PB"},
	{Name: "Paraná", Code: "PR"},
	{Name: "Pernambuco", Code: "PE"},
	{Name: "Piauí", Code: "PI"},
	{Name: "Rio de Janeiro", Code: "RJ"},
	{Name: "Rio Grande do Norte", Code: "RN"},
	{Name: "Rio Grande do Sul", Code: "RS"},
	{Name: "Rondônia", Code: "RO"},
	{Name: "Roraima", Code: "RR"},
	{Name: "Santa Catarina", Code: "SC"},
	{Name: "São Paulo", Code: "SP"},
	{Name: "Sergipe", Code: "SE"},
	{Name: "Tocantins", Code: "TO"},
}

var (
	regionCodeByName = make(map[string]string, len(BrazilStates))
	regionCodes      = make(map[string]bool, len(BrazilStates))
)

func init() {
	for _, region := range BrazilStates {
		regionCodeByName[region.Name] = region.Code
		regionCodes[region.Code] = true
	}
}

// RegionCodeByName retorna o código do estado a partir do nome completo
func RegionCodeByName(name string) (string, bool) {
	code, ok := regionCodeByName[name]
	return code, ok
}

// IsRegionCode verifica se o valor é um dos códigos conhecidos (sensível a maiúsculas)
func IsRegionCode(code string) bool {
	return regionCodes[code]
}

// CategoryCount é a fatia da audiência atribuída a uma categoria (cidade ou estado)
type CategoryCount struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
}

// ResolvedAudienceRow é um CategoryCount com o código do estado resolvido
type ResolvedAudienceRow struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
	RegionCode string  `json:"state_code"`
}
