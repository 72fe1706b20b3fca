package a

type Base struct{}

type Config struct {
	Host    string `fieldz:"default=localhost"`
	Port    int    `fieldz:"port,default=8080"`
	Retries int    `fieldz:"default=3,factory=DefaultRetries"` // want `default and factory are mutually exclusive`
	Debug   bool   `fieldz:"init=yes"`                         // want `init must be true or false`
	Base    Base
}

type Embedded struct {
	Base `fieldz:"default=x"` // want `fieldz tag on embedded field is ignored`
}

type Duplicated struct {
	A string `fieldz:"shared"`
	B string `fieldz:"shared"` // want `duplicate documented field name "shared"`
}
