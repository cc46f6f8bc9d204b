package models

// Spending categories used by the built-in rule set and budget limits
const (
	CategoryGroceries     = "alimentacao_casa"
	CategoryAnnualFee     = "anuidade"
	CategorySubscriptions = "assinaturas"
	CategoryBeauty        = "beleza"
	CategoryHome          = "casa"
	CategoryShopping      = "compras"
	CategoryLeisure       = "diversao-lazer-comida"
	CategoryEducation     = "educacao"
	CategorySports        = "esporte"
	CategoryOther         = "outros"
	CategoryHealth        = "saude"
	CategoryCarInsurance  = "seguro_carro"
	CategoryTransport     = "transp(ub+gas+vel+ccr)"
	CategoryTravel        = "viagem"
)

// Categorization method types
const (
	CategorizationMethodKeyword  = "KEYWORD"
	CategorizationMethodExternal = "EXTERNAL"
	CategorizationMethodFallback = "FALLBACK"
)

// DefaultRuleSetVersion identifies the built-in rule set
const DefaultRuleSetVersion = "builtin-2024.1"

// AllCategories returns all built-in category constants
func AllCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryAnnualFee,
		CategorySubscriptions,
		CategoryBeauty,
		CategoryHome,
		CategoryShopping,
		CategoryLeisure,
		CategoryEducation,
		CategorySports,
		CategoryOther,
		CategoryHealth,
		CategoryCarInsurance,
		CategoryTransport,
		CategoryTravel,
	}
}

// CategoryRule maps a keyword set to a category. Keywords are matched as
// substrings of the normalized description.
type CategoryRule struct {
	Category string   `json:"category" yaml:"category" toml:"category" validate:"required"`
	Keywords []string `json:"keywords" yaml:"keywords" toml:"keywords" validate:"required,min=1,dive,required"`
}

// RuleSet is an ordered, versioned list of category rules. The first rule
// with a matching keyword wins.
type RuleSet struct {
	Version string         `json:"version" yaml:"version" toml:"version" validate:"required"`
	Default string         `json:"default" yaml:"default" toml:"default" validate:"required"`
	Rules   []CategoryRule `json:"rules" yaml:"rules" toml:"rules" validate:"required,min=1,unique=Category,dive"`
}

// CategorizationResult holds the outcome of categorizing a single transaction
type CategorizationResult struct {
	Category       string `json:"category"`
	Method         string `json:"method"`
	MatchedKeyword string `json:"matched_keyword,omitempty"`
}

// DefaultRuleSet returns the built-in ordered keyword rules.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Version: DefaultRuleSetVersion,
		Default: CategoryOther,
		Rules: []CategoryRule{
			{Category: CategoryTravel, Keywords: []string{
				"movida", "rentcars", "melia", "latam", "iberia", "unidas", "airbnb", "azul",
				"smiles", "gol", "city_hall", "foco_aluguel", "tam_lin",
			}},
			{Category: CategoryGroceries, Keywords: []string{
				"hfruti_dcm", "dom_atacadista", "rede_economia", "sam_s_club", "buffet", "hortifruti",
				"mercado_", "pao_de_acucar", "mercear", "hermon", "tempero", "alimento", "padar",
				"depos", "sams", "assai", "pao_de", "lulu", "frutas",
			}},
			{Category: CategoryCarInsurance, Keywords: []string{"hdi"}},
			{Category: CategoryTransport, Keywords: []string{
				"centro_automotivo_pend", "uber", "pop_", "99_tecnologia", "99app", "estaciona",
				"posto", "conectcar", "tembici", "park", "barcas", "digipare", "auto_pos",
			}},
			{Category: CategoryShopping, Keywords: []string{
				"pantys", "borelli_niteroi", "relusa", "lojas_g", "roupas", "panna", "assb_comerci",
				"toy_boy", "kop", "happy", "presente", "daiso", "picadilly", "elister_joias",
				"nestle_brasil_ltda", "arte_dos_vinhos", "riachuelo", "americanas", "cell",
				"mundo_baby", "centauro", "cea", "renner", "pag*lojasrennersa", "iphone", "casa_e_vi",
				"marketplace", "mr_cat", "cresci_e_perdi", "tonys_baby", "cirandinha_baby",
				"loungerie", "amazon", "shein", "calcad", "mercadolivre", "compras",
			}},
			{Category: CategorySubscriptions, Keywords: []string{
				"produtos_globo", "ilha_mix", "melimais", "netflix", "spotify", "apple.com/bill",
				"apple_com/bill", "primebr", "doist",
			}},
			{Category: CategoryHealth, Keywords: []string{"dermage", "drog", "labora"}},
			{Category: CategoryHome, Keywords: []string{
				"midea", "calhas", "first_class", "chaveiro", "leroy", "angela", "camica", "tok",
				"darkstore", "obras_casa", "eletrodomestico",
			}},
			{Category: CategoryEducation, Keywords: []string{
				"infne", "cisco", "rdmedicine", "papelaria", "livraria", "colegio", "saraiva",
				"cursos", "curso", "escola", "faculdade", "universidade",
			}},
			{Category: CategorySports, Keywords: []string{"funcional"}},
			{Category: CategoryLeisure, Keywords: []string{
				"cheirin_bao", "belarmino", "mcdonald", "burger", "subway", "kfc", "bobs", "outback",
				"pizza", "boulevard_go", "starbuc", "cookie", "cafe", "ex_touro", "beco_do_espa",
				"rockribs", "lanch", "suco", "megamatte", "chocolate", "rei_do_mate", "sunomono",
				"drink", "convenie", "hot_dog", "rest", "food", "emporio", "bacio_di", "verdanna",
				"ifd", "comida_fora", "rio_arena", "beto_carrero", "ticket", "coffee", "casal_20",
				"panito", "sush", "sabor", "cheiro", "delicate", "art_cafe_lapa",
			}},
			{Category: CategoryBeauty, Keywords: []string{
				"natura___propria", "maboltt", "chic", "cabel", "sephora", "skin", "boticario", "_beleza",
			}},
			{Category: CategoryAnnualFee, Keywords: []string{"anuid"}},
		},
	}
}
