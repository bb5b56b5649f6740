// Command test_parser is a smoke test exercising the canonical address
// shapes end to end through the public facade.
package main

import (
	"fmt"

	"github.com/address-parser/addressparser"
)

func main() {
	p, err := addressparser.New()
	if err != nil {
		fmt.Println("failed to build parser:", err)
		return
	}

	addresses := []string{
		"Tucumán 1300 1° A",
		"Corrientes y Salta",
		"Tucumán 1300 entre Corrientes y Salta",
		"Tucumán e/ Corrientes y Salta 1000",
		"Ruta 33 KM. 33",
		"Leandro Alem S/N",
		"Tucumán y Córdoba y Callao",
	}

	fmt.Println("=== address parser smoke test ===")
	for i, addr := range addresses {
		fmt.Printf("\n[%d] %s\n", i+1, addr)
		result := p.Parse(addr)
		if result == nil {
			fmt.Println("    -> no result (unparseable or ambiguous)")
			continue
		}
		fmt.Printf("    type:         %s\n", result.Type)
		fmt.Printf("    street names: %v\n", result.StreetNames)
		if result.DoorNumber != nil {
			value, ok := result.NormalizedDoorNumberValue()
			unit, unitOK := result.NormalizedDoorNumberUnit()
			fmt.Printf("    door number:  %q (normalized value=%v ok=%v, unit=%q ok=%v)\n",
				result.DoorNumber.Value, value, ok, unit, unitOK)
		}
		if result.Floor != "" {
			fmt.Printf("    floor:        %s\n", result.Floor)
		}
	}

	fmt.Printf("\nstructure cache entries: %d\n", p.CacheLen())
}
