package solar_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/helioslab/heliosim/internal/solar"
	"github.com/helioslab/heliosim/internal/vec"
)

var _ = Describe("System", func() {
	var sys *solar.System

	BeforeEach(func() {
		sys = solar.New()
	})

	Describe("Planets", func() {
		It("holds exactly eight entries", func() {
			Expect(sys.Planets()).To(HaveLen(8))
		})

		It("returns a copy that does not alias the catalog", func() {
			planets := sys.Planets()
			planets[0].Name = "Vulcan"
			Expect(sys.Planets()[0].Name).To(Equal("Mercury"))
		})

		It("keeps every body inside the heliopause with positive extent", func() {
			for _, p := range sys.Planets() {
				Expect(p.Position.Length()).To(BeNumerically("<", 500))
				Expect(p.Radius).To(BeNumerically(">", 0))
				Expect(p.Mass).To(BeNumerically(">", 0))
			}
		})
	})

	Describe("PlanetByName", func() {
		It("finds a known planet", func() {
			p, ok := sys.PlanetByName("Jupiter")
			Expect(ok).To(BeTrue())
			Expect(p.Mass).To(BeNumerically("~", 317.8, 1e-9))
		})

		It("reports absence for unknown names without faulting", func() {
			_, ok := sys.PlanetByName("Pluto")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("GravitationalFieldAt", func() {
		It("skips the sun term at the origin", func() {
			field := sys.GravitationalFieldAt(vec.Vec3{})
			// only planet terms remain and all are finite
			Expect(field.Length()).To(BeNumerically("<", 1))
		})

		It("points toward the sun far from every planet", func() {
			p := vec.Vec3{X: 0, Y: 400, Z: 0}
			field := sys.GravitationalFieldAt(p)
			Expect(field.Y).To(BeNumerically("<", 0))
		})

		It("contributes nothing from a planet at zero distance", func() {
			earth, ok := sys.PlanetByName("Earth")
			Expect(ok).To(BeTrue())
			field := sys.GravitationalFieldAt(earth.Position)
			// finite: the earth term is skipped, the rest remain
			Expect(field.Length()).To(BeNumerically("<", 1e6))
		})

		It("follows the inverse-square law for the sun term", func() {
			near := sys.GravitationalFieldAt(vec.Vec3{Y: 300}).Length()
			far := sys.GravitationalFieldAt(vec.Vec3{Y: 450}).Length()
			Expect(near).To(BeNumerically(">", far))
		})
	})
})
