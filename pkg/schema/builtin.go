package schema

func fptr(v float64) *float64 { return &v }

type builtinSection struct {
	key    string
	schema SectionSchema
}

// builtin returns the built-in section schemas in registration order.
func builtin() []builtinSection {
	return []builtinSection{
		{"hero", SectionSchema{
			Name:        "Hero Section",
			Description: "Main banner with title, text, and optional image",
			Fields: Fields{
				{"title", FieldSchema{Kind: KindText, Label: "Title", Placeholder: "Enter hero title (optional)"}},
				{"text", FieldSchema{Kind: KindTextarea, Label: "Description", Placeholder: "Enter hero description"}},
				{"image", FieldSchema{Kind: KindURL, Label: "Image URL", Placeholder: "https://example.com/image.jpg"}},
			},
		}},
		{"services", SectionSchema{
			Name:        "Service Packages",
			Description: "Collection of service offerings with detailed information",
			Fields: Fields{
				{"title", FieldSchema{Kind: KindText, Label: "Section Title", Required: true, Placeholder: "Our Service Packages"}},
				{"items", FieldSchema{Kind: KindArray, Label: "Service Packages", Item: &FieldSchema{
					Kind:  KindObject,
					Label: "Service Package",
					Fields: Fields{
						{"title", FieldSchema{Kind: KindText, Label: "Package Title", Required: true, Placeholder: "Mini Villa Date"}},
						{"price", FieldSchema{Kind: KindText, Label: "Price", Required: true, Placeholder: "$285"}},
						{"category", FieldSchema{Kind: KindSelect, Label: "Category", Options: []string{"villa", "outdoor", "bubble", "proposal", "custom"}}},
						{"duration", FieldSchema{Kind: KindText, Label: "Duration", Placeholder: "1 hr 30 min"}},
						{"guestCount", FieldSchema{Kind: KindNumber, Label: "Guest Count", Validation: &Validation{Min: fptr(1), Max: fptr(20)}}},
						{"location", FieldSchema{Kind: KindText, Label: "Location", Placeholder: "Fred Fletcher Park"}},
						{"shortDescription", FieldSchema{Kind: KindTextarea, Label: "Short Description", Placeholder: "Brief description for listings"}},
						{"fullDescription", FieldSchema{Kind: KindTextarea, Label: "Full Description", Placeholder: "Detailed description of the experience"}},
						{"image", FieldSchema{Kind: KindURL, Label: "Image URL", Placeholder: "https://example.com/image.jpg"}},
						{"specialFeatures", FieldSchema{Kind: KindArray, Label: "Special Features", Item: &FieldSchema{
							Kind: KindText, Label: "Feature", Placeholder: "Love Island villa colors and theme",
						}}},
						{"availability", FieldSchema{Kind: KindRadio, Label: "Availability Status",
							Options: []string{"available", "limited", "booked", "seasonal"}, Default: "available",
							Help:    "Current booking availability for this package"}},
						{"bookingDeadline", FieldSchema{Kind: KindNumber, Label: "Booking Deadline (days in advance)",
							Validation: &Validation{Min: fptr(1), Max: fptr(365)}, Default: 7,
							Help:       "How many days in advance must this be booked?"}},
						{"seasonalPricing", FieldSchema{Kind: KindCheckbox, Label: "Seasonal Pricing",
							Placeholder: "This package has different pricing by season",
							Help:        "Check if prices vary by season or demand"}},
						{"tags", FieldSchema{Kind: KindArray, Label: "Package Tags", Item: &FieldSchema{
							Kind: KindSelect, Label: "Tag",
							Options: []string{"romantic", "family-friendly", "luxury", "budget", "outdoor", "indoor", "customizable", "popular"},
						}, Help: "Tags help customers find the right package"}},
						{"minimumNotice", FieldSchema{Kind: KindRange, Label: "Minimum Notice (hours)",
							Validation: &Validation{Min: fptr(24), Max: fptr(720)}, Default: 48,
							Help:       "Minimum hours of notice required for booking"}},
						{"cancellationPolicy", FieldSchema{Kind: KindSelect, Label: "Cancellation Policy",
							Options: []string{"flexible", "moderate", "strict", "non-refundable"}, Default: "moderate"}},
						{"weatherDependent", FieldSchema{Kind: KindCheckbox, Label: "Weather Dependent",
							Placeholder: "This service is affected by weather conditions",
							Help:        "Check if weather conditions affect this service"}},
						{"addOnsIncluded", FieldSchema{Kind: KindArray, Label: "Included Add-Ons", Item: &FieldSchema{
							Kind: KindText, Label: "Add-On", Placeholder: "Bluetooth speaker",
						}, Help: "Add-ons that are included in the base price"}},
					},
				}}},
			},
		}},
		{"baseline", SectionSchema{
			Name:        "Baseline Inclusions",
			Description: "Standard and additional items included in services",
			Fields: Fields{
				{"title", FieldSchema{Kind: KindText, Label: "Section Title", Required: true, Placeholder: "What's Included"}},
				{"standardInclusions", FieldSchema{Kind: KindArray, Label: "Standard Inclusions", Item: &FieldSchema{
					Kind: KindText, Label: "Inclusion", Placeholder: "Soft floor coverings, plush pillows, and cozy blankets",
				}}},
				{"additionalInclusions", FieldSchema{Kind: KindArray, Label: "Additional Inclusions", Item: &FieldSchema{
					Kind: KindText, Label: "Inclusion", Placeholder: "Refreshing sparkling cider",
				}}},
			},
		}},
		{"addOns", SectionSchema{
			Name:        "Add-On Items",
			Description: "Optional extras that can be purchased",
			Fields: Fields{
				{"title", FieldSchema{Kind: KindText, Label: "Section Title", Required: true, Placeholder: "Available Add-Ons"}},
				{"items", FieldSchema{Kind: KindArray, Label: "Add-On Items", Item: &FieldSchema{
					Kind: KindText, Label: "Item", Placeholder: "Charcuterie board",
				}}},
			},
		}},
		{"contact", SectionSchema{
			Name:        "Contact Information",
			Description: "Business contact details and booking information",
			Fields: Fields{
				{"title", FieldSchema{Kind: KindText, Label: "Section Title", Required: true, Placeholder: "Ready to Book?"}},
				{"owner", FieldSchema{Kind: KindText, Label: "Owner/Contact Name", Placeholder: "Ariana Jagessar"}},
				{"email", FieldSchema{Kind: KindEmail, Label: "Email Address", Placeholder: "contact@business.com"}},
				{"phone", FieldSchema{Kind: KindTel, Label: "Phone Number", Placeholder: "984-789-0731"}},
				{"depositInfo", FieldSchema{Kind: KindTextarea, Label: "Deposit Information", Placeholder: "We accept deposits via CashApp or Zelle..."}},
			},
		}},
		{"content", SectionSchema{
			Name:        "Content Section",
			Description: "General content with title and text",
			Fields: Fields{
				{"title", FieldSchema{Kind: KindText, Label: "Title", Placeholder: "Section Title (optional)"}},
				{"text", FieldSchema{Kind: KindTextarea, Label: "Content", Placeholder: "Enter your content here..."}},
				{"image", FieldSchema{Kind: KindURL, Label: "Image URL (optional)", Placeholder: "https://example.com/image.jpg"}},
			},
		}},
		{"testimonials", SectionSchema{
			Name:        "Customer Testimonials",
			Description: "Collection of customer reviews and testimonials",
			Fields: Fields{
				{"title", FieldSchema{Kind: KindText, Label: "Section Title", Required: true, Placeholder: "What Our Customers Say"}},
				{"subtitle", FieldSchema{Kind: KindText, Label: "Subtitle (optional)", Placeholder: "Real experiences from real customers"}},
				{"items", FieldSchema{Kind: KindArray, Label: "Testimonials", Item: &FieldSchema{
					Kind:  KindObject,
					Label: "Testimonial",
					Fields: Fields{
						{"name", FieldSchema{Kind: KindText, Label: "Customer Name", Required: true, Placeholder: "Sarah Johnson"}},
						{"role", FieldSchema{Kind: KindText, Label: "Role/Title (optional)", Placeholder: "Event Planner"}},
						{"company", FieldSchema{Kind: KindText, Label: "Company (optional)", Placeholder: "Dream Events LLC"}},
						{"rating", FieldSchema{Kind: KindNumber, Label: "Rating (1-5)", Validation: &Validation{Min: fptr(1), Max: fptr(5)}, Placeholder: "5"}},
						{"quote", FieldSchema{Kind: KindTextarea, Label: "Testimonial Quote", Required: true,
							Placeholder: "The service was absolutely amazing! Every detail was perfect..."}},
						{"image", FieldSchema{Kind: KindURL, Label: "Customer Photo (optional)", Placeholder: "https://example.com/customer-photo.jpg"}},
						{"location", FieldSchema{Kind: KindText, Label: "Location (optional)", Placeholder: "Raleigh, NC"}},
						{"eventType", FieldSchema{Kind: KindSelect, Label: "Event Type",
							Options: []string{"wedding", "birthday", "corporate", "anniversary", "proposal", "other"}}},
					},
				}}},
			},
		}},
		{"gallery", SectionSchema{
			Name:        "Photo Gallery",
			Description: "Collection of images with captions",
			Fields: Fields{
				{"title", FieldSchema{Kind: KindText, Label: "Gallery Title", Required: true, Placeholder: "Our Work"}},
				{"description", FieldSchema{Kind: KindTextarea, Label: "Gallery Description", Placeholder: "Take a look at some of our recent events..."}},
				{"layout", FieldSchema{Kind: KindSelect, Label: "Gallery Layout", Options: []string{"grid", "masonry", "carousel", "slideshow"}}},
				{"images", FieldSchema{Kind: KindArray, Label: "Images", Item: &FieldSchema{
					Kind:  KindObject,
					Label: "Image",
					Fields: Fields{
						{"src", FieldSchema{Kind: KindURL, Label: "Image URL", Required: true, Placeholder: "https://example.com/image.jpg", Default: ""}},
						{"caption", FieldSchema{Kind: KindText, Label: "Caption (optional)", Placeholder: "Beautiful outdoor setup", Default: ""}},
						{"alt", FieldSchema{Kind: KindText, Label: "Alt Text", Required: true, Placeholder: "Outdoor picnic setup with flowers", Default: ""}},
						{"category", FieldSchema{Kind: KindSelect, Label: "Category",
							Options: []string{"villa", "outdoor", "luxury", "bubble", "proposal"}, Default: "villa"}},
					},
				}}},
			},
		}},
		{"events", SectionSchema{
			Name:        "Upcoming Events",
			Description: "Showcase upcoming events and bookings",
			Fields: Fields{
				{"title", FieldSchema{Kind: KindText, Label: "Section Title", Required: true, Placeholder: "Upcoming Events"}},
				{"showPastEvents", FieldSchema{Kind: KindCheckbox, Label: "Show Past Events",
					Placeholder: "Include events that have already happened",
					Help:        "Check this to display past events in a separate section"}},
				{"maxEvents", FieldSchema{Kind: KindRange, Label: "Maximum Events to Display",
					Validation: &Validation{Min: fptr(1), Max: fptr(20)}, Default: 6,
					Help:       "Limit the number of events shown on the page"}},
				{"events", FieldSchema{Kind: KindArray, Label: "Events", Item: &FieldSchema{
					Kind:  KindObject,
					Label: "Event",
					Fields: Fields{
						{"title", FieldSchema{Kind: KindText, Label: "Event Title", Required: true, Placeholder: "Summer Wedding Showcase"}},
						{"date", FieldSchema{Kind: KindDate, Label: "Event Date", Required: true, Help: "The date when this event takes place"}},
						{"time", FieldSchema{Kind: KindTime, Label: "Event Time", Placeholder: "14:00", Help: "Start time for the event"}},
						{"duration", FieldSchema{Kind: KindNumber, Label: "Duration (hours)",
							Validation: &Validation{Min: fptr(0.5), Max: fptr(24)}, Placeholder: "2"}},
						{"location", FieldSchema{Kind: KindText, Label: "Location", Required: true, Placeholder: "Fred Fletcher Park"}},
						{"description", FieldSchema{Kind: KindTextarea, Label: "Event Description",
							Placeholder: "Join us for a beautiful showcase of our wedding packages..."}},
						{"eventType", FieldSchema{Kind: KindRadio, Label: "Event Type",
							Options: []string{"public", "private", "workshop", "showcase"},
							Help:    "Select the type of event this is"}},
						{"price", FieldSchema{Kind: KindText, Label: "Price", Placeholder: "Free",
							Validation: &Validation{Pattern: `^(Free|\$\d+(\.\d{2})?)$`},
							Help:       "Enter 'Free' or price like '$25.00'"}},
						{"capacity", FieldSchema{Kind: KindNumber, Label: "Max Capacity",
							Validation: &Validation{Min: fptr(1), Max: fptr(500)}, Placeholder: "50"}},
						{"registrationRequired", FieldSchema{Kind: KindCheckbox, Label: "Registration Required",
							Placeholder: "Guests must register in advance"}},
						{"featured", FieldSchema{Kind: KindCheckbox, Label: "Featured Event",
							Placeholder: "Highlight this event",
							Help:        "Featured events appear at the top of the list"}},
						{"image", FieldSchema{Kind: KindURL, Label: "Event Image", Placeholder: "https://example.com/event-image.jpg"}},
						{"themeColor", FieldSchema{Kind: KindColor, Label: "Theme Color", Default: "#3B82F6",
							Help: "Color used for event styling and highlights"}},
					},
				}}},
			},
		}},
		{"pricing", SectionSchema{
			Name:        "Pricing Plans",
			Description: "Display pricing tiers and packages",
			Fields: Fields{
				{"title", FieldSchema{Kind: KindText, Label: "Section Title", Required: true, Placeholder: "Our Pricing"}},
				{"subtitle", FieldSchema{Kind: KindText, Label: "Subtitle", Placeholder: "Choose the perfect package for your event"}},
				{"currency", FieldSchema{Kind: KindSelect, Label: "Currency",
					Options: []string{"USD", "EUR", "GBP", "CAD", "AUD"}, Default: "USD"}},
				{"billingPeriod", FieldSchema{Kind: KindRadio, Label: "Billing Period",
					Options: []string{"one-time", "hourly", "daily", "monthly", "yearly"}, Default: "one-time"}},
				{"plans", FieldSchema{Kind: KindArray, Label: "Pricing Plans", Item: &FieldSchema{
					Kind:  KindObject,
					Label: "Plan",
					Fields: Fields{
						{"name", FieldSchema{Kind: KindText, Label: "Plan Name", Required: true, Placeholder: "Basic Package"}},
						{"price", FieldSchema{Kind: KindNumber, Label: "Price", Required: true,
							Validation: &Validation{Min: fptr(0)}, Placeholder: "299"}},
						{"popular", FieldSchema{Kind: KindCheckbox, Label: "Most Popular", Placeholder: "Mark as most popular plan"}},
						{"description", FieldSchema{Kind: KindTextarea, Label: "Plan Description", Placeholder: "Perfect for intimate gatherings..."}},
						{"features", FieldSchema{Kind: KindArray, Label: "Features", Item: &FieldSchema{
							Kind: KindText, Label: "Feature", Placeholder: "Setup and cleanup included",
						}}},
						{"maxGuests", FieldSchema{Kind: KindRange, Label: "Maximum Guests",
							Validation: &Validation{Min: fptr(1), Max: fptr(100)}, Default: 10}},
						{"available", FieldSchema{Kind: KindCheckbox, Label: "Currently Available", Default: true,
							Placeholder: "This plan is available for booking"}},
					},
				}}},
			},
		}},
		{"contactInfo", SectionSchema{
			Name:        "Detailed Contact Information",
			Description: "Comprehensive contact details with business information",
			Fields: Fields{
				{"title", FieldSchema{Kind: KindText, Label: "Section Title", Required: true, Placeholder: "Contact Information"}},
				{"owner", FieldSchema{Kind: KindText, Label: "Owner/Contact Person", Placeholder: "Ariana Jagessar"}},
				{"email", FieldSchema{Kind: KindEmail, Label: "Email Address", Placeholder: "picnicutopia@gmail.com"}},
				{"phone", FieldSchema{Kind: KindTel, Label: "Phone Number", Placeholder: "984-789-0731"}},
				{"location", FieldSchema{Kind: KindText, Label: "Service Location", Placeholder: "Raleigh, NC & Surrounding Areas"}},
				{"hours", FieldSchema{Kind: KindText, Label: "Business Hours Summary", Placeholder: "Available by appointment, 7 days a week"}},
				{"businessHours", FieldSchema{Kind: KindObject, Label: "Detailed Business Hours", Fields: Fields{
					{"monday", FieldSchema{Kind: KindText, Label: "Monday", Placeholder: "By appointment"}},
					{"tuesday", FieldSchema{Kind: KindText, Label: "Tuesday", Placeholder: "By appointment"}},
					{"wednesday", FieldSchema{Kind: KindText, Label: "Wednesday", Placeholder: "By appointment"}},
					{"thursday", FieldSchema{Kind: KindText, Label: "Thursday", Placeholder: "By appointment"}},
					{"friday", FieldSchema{Kind: KindText, Label: "Friday", Placeholder: "By appointment"}},
					{"saturday", FieldSchema{Kind: KindText, Label: "Saturday", Placeholder: "By appointment"}},
					{"sunday", FieldSchema{Kind: KindText, Label: "Sunday", Placeholder: "By appointment"}},
				}}},
				{"serviceAreas", FieldSchema{Kind: KindArray, Label: "Service Areas", Item: &FieldSchema{
					Kind: KindText, Label: "City/Area", Placeholder: "Raleigh",
				}}},
				{"responseTime", FieldSchema{Kind: KindText, Label: "Response Time",
					Placeholder: "We typically respond within 2-4 hours during business hours"}},
				{"bookingNotice", FieldSchema{Kind: KindText, Label: "Booking Notice",
					Placeholder: "We recommend booking at least 1-2 weeks in advance"}},
				{"socialMedia", FieldSchema{Kind: KindObject, Label: "Social Media", Fields: Fields{
					{"facebook", FieldSchema{Kind: KindText, Label: "Facebook", Placeholder: "Picnic Utopia"}},
					{"instagram", FieldSchema{Kind: KindText, Label: "Instagram", Placeholder: "@picnicutopia"}},
				}}},
			},
		}},
		{"form", SectionSchema{
			Name:        "Contact Form",
			Description: "Contact form with instructions and required fields",
			Fields: Fields{
				{"title", FieldSchema{Kind: KindText, Label: "Section Title", Required: true, Placeholder: "Send Us a Message"}},
				{"description", FieldSchema{Kind: KindTextarea, Label: "Form Description",
					Placeholder: "Fill out the form below and we'll get back to you within 24 hours"}},
				{"formInstructions", FieldSchema{Kind: KindTextarea, Label: "Form Instructions",
					Placeholder: "Please provide as much detail as possible about your event"}},
				{"requiredFields", FieldSchema{Kind: KindArray, Label: "Required Form Fields", Item: &FieldSchema{
					Kind: KindText, Label: "Field Name", Placeholder: "name",
				}}},
			},
		}},
	}
}
