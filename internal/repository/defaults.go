package repository

import "tendas-backend/internal/domain"

// defaultProducts is the built-in catalog seed, served whenever nothing has
// been persisted yet (or the persisted value cannot be parsed).
var defaultProducts = []domain.Product{
	{
		ID:   1,
		Name: "Tarpaulins",
		Description: "Heavy-duty waterproof PVC tarpaulins for various outdoor applications. " +
			"Using our specialized high frequency sealing machines we are able to custom make " +
			"tarpaulins to fit your load and storage needs which means the tarps never end up " +
			"too big or too small. We can also stencil your company name in bold 30cm letters " +
			"onto the tarp for advertising while the truck is out and identification if the " +
			"tarp is stolen. We can fit solid brass eyelets to your requirements and have a " +
			"quick turn-around time on all tarpaulin repairs.",
		Image: "/images/products/tarpaulins/main.jpg",
		Images: []string{
			"/images/products/tarpaulins/main.jpg",
			"/images/products/tarpaulins/1.jpg",
			"/images/products/tarpaulins/2.jpg",
			"/images/products/tarpaulins/3.jpg",
		},
		Category:    "PVC Products",
		Weight:      "Medium",
		Seasonality: "All-Season",
	},
	{
		ID:   2,
		Name: "Vehicle Covers",
		Description: "Custom-fit protective covers for cars, trucks, and other vehicles. " +
			"Flat covers on the back of pickup trucks. Txopela doors and roofs. Boat covers. " +
			"Frames and covers for large trucks.",
		Image: "/images/products/vehicle-covers/main.jpg",
		Images: []string{
			"/images/products/vehicle-covers/main.jpg",
			"/images/products/vehicle-covers/1.jpg",
			"/images/products/vehicle-covers/2.jpg",
			"/images/products/vehicle-covers/3.jpg",
		},
		Category:    "Covers",
		Weight:      "Medium",
		Seasonality: "All-Season",
	},
	{
		ID:   3,
		Name: "Car Shade Ports",
		Description: "Protect your car from the sun, heat, weathering and bird droppings with " +
			"one of our car shade ports. We have standard designs or we can make custom shade " +
			"ports to suit your yard and needs. We have a wide range of colours in material " +
			"proven to stand up to the Moçambique sun.",
		Image: "/images/products/shade-ports/main.jpg",
		Images: []string{
			"/images/products/shade-ports/main.jpg",
			"/images/products/shade-ports/1.jpg",
			"/images/products/shade-ports/2.jpg",
			"/images/products/shade-ports/3.jpg",
		},
		Category:    "Shade Structures",
		Capacity:    "1-2 Vehicles",
		Weight:      "Heavy",
		Seasonality: "All-Season",
	},
	{
		ID:   4,
		Name: "Tents",
		Description: "Using only the best materials and designs we are suppliers to many heavy " +
			"duty users such as: Safari camps. Long term construction camps. The military. " +
			"The Police. We make standard tents and custom tents – from the smallest dome tent " +
			"to the largest party marquee or warehouse tent.",
		Image: "/images/products/tents/main.jpg",
		Images: []string{
			"/images/products/tents/main.jpg",
			"/images/products/tents/1.jpg",
			"/images/products/tents/2.jpg",
			"/images/products/tents/3.jpg",
		},
		Category:    "Tents",
		Capacity:    "Various Sizes",
		Weight:      "Medium to Heavy",
		Seasonality: "All-Season",
	},
	{
		ID:          5,
		Name:        "Custom Work",
		Description: "Bespoke PVC and canvas solutions tailored to your specific requirements",
		Image:       "/images/products/custom-work/main.jpg",
		Images: []string{
			"/images/products/custom-work/main.jpg",
			"/images/products/custom-work/1.jpg",
			"/images/products/custom-work/2.jpg",
			"/images/products/custom-work/3.jpg",
		},
		Category:    "Custom",
		Weight:      "Varies",
		Seasonality: "All-Season",
	},
	{
		ID:   6,
		Name: "Awnings and Drop Blinds",
		Description: "Enhance your outdoor entertaining space at your home, café or business " +
			"with a cover or blind that is stylish, durable and effective. Retractable options " +
			"let you choose the balance of sun and shade so you can make the most of being " +
			"outside whilst remaining cool. Custom designs and a wide range of colours and " +
			"materials ensure you get the look and feel that you want to add value to your " +
			"property or business.",
		Image: "/images/products/awnings/main.jpg",
		Images: []string{
			"/images/products/awnings/main.jpg",
			"/images/products/awnings/1.jpg",
			"/images/products/awnings/2.jpg",
			"/images/products/awnings/3.jpg",
		},
		Category:    "Shade Solutions",
		Weight:      "Medium",
		Seasonality: "All-Season",
	},
}

// DefaultProducts returns a deep copy of the built-in catalog seed.
func DefaultProducts() []domain.Product {
	return domain.CloneProducts(defaultProducts)
}
