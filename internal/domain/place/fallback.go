package place

import "github.com/FACorreiaa/tripcraft-api/internal/types"

// Curated attractions per city, used when every live provider comes back
// empty. Mirrors the coordinate fallback: same ~40 Sri Lankan cities.
var fallbackPlaces = map[string][]types.Place{
	"Colombo": {
		{Name: "Gangaramaya Temple", Type: "Buddhist Temple", Rating: 4.5, Description: "A beautiful Buddhist temple complex in Colombo with traditional architecture and museum."},
		{Name: "Galle Face Green", Type: "Urban Park", Rating: 4.3, Description: "Ocean-side urban park perfect for evening walks, kite flying, and sunset views."},
		{Name: "National Museum of Colombo", Type: "Museum", Rating: 4.2, Description: "Sri Lanka's largest museum showcasing cultural heritage and historical artifacts."},
		{Name: "Mount Lavinia Beach", Type: "Beach", Rating: 4.2, Description: "Popular beach area with golden sands, swimming spots, and beachside restaurants."},
		{Name: "Viharamahadevi Park", Type: "Park", Rating: 4.1, Description: "Colombo's largest park with beautiful gardens, fountains, and a giant Buddha statue."},
		{Name: "Independence Memorial Hall", Type: "Monument", Rating: 4.0, Description: "Historical monument commemorating independence from British rule."},
		{Name: "Pettah Floating Market", Type: "Market", Rating: 4.0, Description: "Colorful floating market with local produce, crafts, and street food."},
		{Name: "Colombo Dutch Museum", Type: "Museum", Rating: 3.9, Description: "Museum showcasing Dutch colonial history in a restored 17th-century building."},
		{Name: "Seema Malaka Temple", Type: "Buddhist Temple", Rating: 4.3, Description: "Serene temple on Beira Lake designed by Geoffrey Bawa."},
		{Name: "Colombo Lotus Tower", Type: "Observation Tower", Rating: 4.1, Description: "Tallest tower in South Asia with observation decks and panoramic city views."},
	},
	"Kandy": {
		{Name: "Temple of the Sacred Tooth Relic", Type: "Buddhist Temple", Rating: 4.8, Description: "UNESCO World Heritage site housing Buddha's tooth relic, most sacred Buddhist site in Sri Lanka."},
		{Name: "Kandy Lake", Type: "Lake", Rating: 4.2, Description: "Scenic artificial lake in the heart of Kandy, perfect for evening walks with temple views."},
		{Name: "Royal Botanical Gardens Peradeniya", Type: "Botanical Garden", Rating: 4.6, Description: "One of Asia's finest botanical gardens with diverse plant collections and orchid house."},
		{Name: "Bahiravokanda Vihara Buddha Statue", Type: "Monument", Rating: 4.4, Description: "Giant white Buddha statue overlooking Kandy with panoramic city views."},
		{Name: "Udawatta Kele Sanctuary", Type: "Forest Reserve", Rating: 4.3, Description: "Forest reserve with walking trails, birdwatching, and tranquility near Temple of Tooth."},
		{Name: "Kandy Arts & Crafts Association", Type: "Crafts Center", Rating: 4.0, Description: "Center showcasing traditional Sri Lankan arts, crafts, and wood carvings."},
		{Name: "Commonwealth War Cemetery", Type: "Memorial", Rating: 4.2, Description: "Well-maintained cemetery honoring Commonwealth soldiers from World War II."},
		{Name: "Kandy View Point", Type: "Viewpoint", Rating: 4.5, Description: "Best viewpoint for panoramic photos of Kandy city and the lake."},
		{Name: "National Museum Kandy", Type: "Museum", Rating: 3.8, Description: "Museum in the former royal palace showcasing Kandy's history and culture."},
		{Name: "Embekka Devalaya", Type: "Hindu Temple", Rating: 4.3, Description: "Famous for intricate wood carvings and pillars, UNESCO tentative site."},
	},
	"Galle": {
		{Name: "Galle Fort", Type: "Fort", Rating: 4.8, Description: "UNESCO World Heritage site with Dutch colonial architecture, ramparts, and charming streets."},
		{Name: "Unawatuna Beach", Type: "Beach", Rating: 4.6, Description: "Pristine crescent-shaped beach with coral reefs, water sports, and beach cafes."},
		{Name: "Japanese Peace Pagoda", Type: "Pagoda", Rating: 4.3, Description: "Peaceful stupa on Rumassala Hill with panoramic ocean views and meditation areas."},
		{Name: "Galle Lighthouse", Type: "Lighthouse", Rating: 4.4, Description: "Iconic lighthouse at the edge of Galle Fort, Sri Lanka's oldest light station."},
		{Name: "National Maritime Museum", Type: "Museum", Rating: 4.0, Description: "Museum showcasing maritime history, marine biology, and naval artifacts."},
		{Name: "Jungle Beach", Type: "Beach", Rating: 4.5, Description: "Secluded beach surrounded by jungle, accessible by short hike from Unawatuna."},
		{Name: "Galle Fort Clock Tower", Type: "Landmark", Rating: 4.2, Description: "Historic clock tower at the fort entrance, built in 1883."},
		{Name: "Martin Wickramasinghe Museum", Type: "Museum", Rating: 4.1, Description: "Museum dedicated to Sri Lanka's renowned author in his childhood home."},
		{Name: "Rumassala Sanctuary", Type: "Sanctuary", Rating: 4.3, Description: "Jungle sanctuary with hiking trails, medicinal plants, and beach access."},
		{Name: "St. Mary's Cathedral", Type: "Church", Rating: 4.0, Description: "Historic Catholic church within Galle Fort with beautiful architecture."},
	},
	"Negombo": {
		{Name: "Negombo Beach", Type: "Beach", Rating: 4.3, Description: "Long golden sandy beach close to Colombo International Airport, perfect for sunset walks."},
		{Name: "Negombo Fish Market", Type: "Market", Rating: 4.2, Description: "Bustling fish market showcasing daily catch, auctions, and traditional fishing methods."},
		{Name: "Dutch Canal", Type: "Canal", Rating: 4.1, Description: "Historic canal network built by Dutch, perfect for boat rides and birdwatching tours."},
		{Name: "St. Mary's Church", Type: "Church", Rating: 4.3, Description: "Beautiful Catholic church with impressive architecture and religious significance."},
		{Name: "Negombo Lagoon", Type: "Lagoon", Rating: 4.4, Description: "Extensive lagoon perfect for birdwatching, boat tours, and mangrove exploration."},
		{Name: "Muthurajawela Marsh", Type: "Wetland", Rating: 4.2, Description: "Protected wetland with boat safaris, diverse birdlife, and mangrove forests."},
		{Name: "Angurukaramulla Temple", Type: "Buddhist Temple", Rating: 4.0, Description: "Ancient Buddhist temple with intricate murals, statues, and peaceful atmosphere."},
		{Name: "Negombo Dutch Fort", Type: "Fort", Rating: 3.9, Description: "Remains of Dutch fort overlooking Negombo lagoon, built in 1672."},
		{Name: "Hamilton Canal", Type: "Canal", Rating: 4.0, Description: "Scenic canal built by British, connecting Colombo to Puttalam."},
		{Name: "St. Sebastian's Church", Type: "Church", Rating: 4.1, Description: "Gothic-style church with beautiful stained glass windows and architecture."},
	},
	"Bentota": {
		{Name: "Bentota Beach", Type: "Beach", Rating: 4.5, Description: "Long golden beach perfect for swimming, water sports, and relaxation with calm waters."},
		{Name: "Brief Garden", Type: "Garden", Rating: 4.4, Description: "Beautiful garden created by Bevis Bawa, brother of architect Geoffrey Bawa."},
		{Name: "Kosgoda Turtle Hatchery", Type: "Conservation Center", Rating: 4.3, Description: "Sea turtle conservation and hatchery project protecting endangered species."},
		{Name: "Bentota River Safari", Type: "River Cruise", Rating: 4.4, Description: "Boat safari through mangrove forests, waterways, and birdwatching spots."},
		{Name: "Lunuganga Garden", Type: "Garden", Rating: 4.6, Description: "Country estate and garden of architect Geoffrey Bawa, showcasing landscape design."},
		{Name: "Galapatha Raja Maha Viharaya", Type: "Buddhist Temple", Rating: 4.2, Description: "Ancient temple with historical significance and beautiful architecture."},
		{Name: "Water Sports Center", Type: "Adventure Sports", Rating: 4.3, Description: "Jet skiing, banana boat rides, windsurfing, and other water activities."},
		{Name: "Bentota Railway Bridge", Type: "Bridge", Rating: 4.0, Description: "Historic railway bridge with scenic views of Bentota River."},
		{Name: "Induruwa Beach", Type: "Beach", Rating: 4.2, Description: "Less crowded beach section ideal for peaceful swimming and relaxation."},
		{Name: "Bawa's Bentota Beach Hotel", Type: "Architecture", Rating: 4.3, Description: "Iconic hotel designed by Geoffrey Bawa, masterpiece of tropical modernism."},
	},
	"Hikkaduwa": {
		{Name: "Hikkaduwa Beach", Type: "Beach", Rating: 4.5, Description: "Famous for surfing, nightlife, coral reefs, and vibrant beach culture."},
		{Name: "Hikkaduwa Coral Sanctuary", Type: "Marine Sanctuary", Rating: 4.4, Description: "Protected marine area with glass-bottom boat tours and snorkeling."},
		{Name: "Tsunami Honganji Temple", Type: "Buddhist Temple", Rating: 4.2, Description: "Japanese-style temple built after the 2004 tsunami as a memorial."},
		{Name: "Hikkaduwa Turtle Hatchery", Type: "Conservation Center", Rating: 4.3, Description: "Conservation project protecting sea turtles and their hatchlings."},
		{Name: "Narigama Beach", Type: "Beach", Rating: 4.4, Description: "Less crowded beach section with good swimming conditions and beach bars."},
		{Name: "Hikkaduwa National Park", Type: "National Park", Rating: 4.3, Description: "Marine national park protecting coral reefs and marine biodiversity."},
		{Name: "Moonstone Mine", Type: "Mine", Rating: 4.0, Description: "Traditional moonstone mining area showcasing local gem industry."},
		{Name: "Seenigama Temple", Type: "Hindu Temple", Rating: 4.1, Description: "Ancient temple on small island, accessible during low tide."},
		{Name: "Hikkaduwa Surf Point", Type: "Surf Spot", Rating: 4.5, Description: "Popular surfing spot with consistent waves for beginners and experts."},
		{Name: "Hikkaduwa Glass Bottom Boats", Type: "Boat Tour", Rating: 4.2, Description: "Glass bottom boat tours to see coral reefs and marine life without getting wet."},
	},
	"Mirissa": {
		{Name: "Mirissa Beach", Type: "Beach", Rating: 4.7, Description: "Picturesque beach with palm trees, known for whale watching and beautiful sunsets."},
		{Name: "Mirissa Whale Watching", Type: "Wildlife Tour", Rating: 4.6, Description: "Boat tours to spot blue whales, sperm whales, and dolphins in their natural habitat."},
		{Name: "Secret Beach", Type: "Beach", Rating: 4.5, Description: "Secluded beach accessible through jungle path, perfect for privacy and relaxation."},
		{Name: "Coconut Tree Hill", Type: "Viewpoint", Rating: 4.4, Description: "Iconic viewpoint with coconut trees and panoramic ocean views, perfect for photos."},
		{Name: "Parrot Rock", Type: "Viewpoint", Rating: 4.3, Description: "Rock formation with panoramic views of Mirissa beach and surrounding area."},
		{Name: "Mirissa Fishing Harbour", Type: "Harbor", Rating: 4.0, Description: "Active fishing harbor with colorful boats, fresh seafood, and local atmosphere."},
		{Name: "Weligama Bay", Type: "Bay", Rating: 4.3, Description: "Nearby bay popular for surfing lessons with gentle waves for beginners."},
		{Name: "Mirissa Marine Park", Type: "Marine Park", Rating: 4.2, Description: "Marine protected area with diverse marine life and coral formations."},
		{Name: "Polhena Beach", Type: "Beach", Rating: 4.1, Description: "Sheltered beach with calm waters ideal for swimming and snorkeling."},
		{Name: "Mirissa Cliff", Type: "Viewpoint", Rating: 4.3, Description: "Cliff area with restaurants and bars offering sunset views over the ocean."},
	},
	"Tangalle": {
		{Name: "Tangalle Beach", Type: "Beach", Rating: 4.6, Description: "Long, pristine beach with golden sand, rock formations, and clear turquoise water."},
		{Name: "Rekawa Turtle Conservation Project", Type: "Conservation Center", Rating: 4.5, Description: "Turtle nesting beach with conservation project and night turtle watching tours."},
		{Name: "Hummanaya Blow Hole", Type: "Natural Wonder", Rating: 4.4, Description: "Only blow hole in Sri Lanka, where sea water sprays up through rock formations."},
		{Name: "Mulkirigala Rock Temple", Type: "Buddhist Temple", Rating: 4.3, Description: "Ancient rock temple with caves, frescoes, and panoramic views from the summit."},
		{Name: "Medaketiya Beach", Type: "Beach", Rating: 4.5, Description: "Secluded beach near Tangalle, perfect for swimming and relaxation."},
		{Name: "Tangalle Fishing Harbor", Type: "Harbor", Rating: 4.0, Description: "Traditional fishing harbor with colorful boats and fresh seafood market."},
		{Name: "Wewurukannala Temple", Type: "Buddhist Temple", Rating: 4.2, Description: "Temple with largest seated Buddha statue in Sri Lanka (160 feet tall)."},
		{Name: "Goyambokka Beach", Type: "Beach", Rating: 4.4, Description: "Beautiful sheltered beach with calm waters, ideal for families with children."},
		{Name: "Kalametiya Bird Sanctuary", Type: "Bird Sanctuary", Rating: 4.3, Description: "Lagoon and mangrove area perfect for birdwatching and boat safaris."},
		{Name: "Palm Paradise Cabanas", Type: "Beach Resort", Rating: 4.2, Description: "Beachfront accommodation with traditional cabanas and palm-fringed beach."},
	},
	"Nuwara Eliya": {
		{Name: "Gregory Lake", Type: "Lake", Rating: 4.3, Description: "Scenic man-made lake with boating, horse riding, swan pedal boats, and beautiful views."},
		{Name: "Horton Plains National Park", Type: "National Park", Rating: 4.7, Description: "UNESCO World Heritage site with hiking trails to World's End viewpoint and Baker's Falls."},
		{Name: "Tea Plantations", Type: "Plantation", Rating: 4.6, Description: "Famous tea estates offering tours, factory visits, and tastings of Ceylon tea."},
		{Name: "Victoria Park", Type: "Park", Rating: 4.2, Description: "Beautiful botanical garden with exotic plants, flower beds, and birdwatching."},
		{Name: "Lover's Leap Waterfall", Type: "Waterfall", Rating: 4.1, Description: "Scenic waterfall with hiking trails, tea plantation views, and local legends."},
		{Name: "Single Tree Hill", Type: "Viewpoint", Rating: 4.4, Description: "Highest point in Nuwara Eliya with 360-degree panoramic views of surrounding hills."},
		{Name: "Nuwara Eliya Golf Club", Type: "Golf Course", Rating: 4.3, Description: "One of Asia's oldest golf courses (1889) with mountain views and challenging layout."},
		{Name: "Seetha Amman Temple", Type: "Hindu Temple", Rating: 4.2, Description: "Colorful temple associated with the Ramayana epic, located in Seetha Eliya."},
		{Name: "Galway's Land National Park", Type: "National Park", Rating: 4.0, Description: "Small national park ideal for birdwatching, nature walks, and endemic species."},
		{Name: "Pedro Tea Estate", Type: "Tea Factory", Rating: 4.3, Description: "One of Sri Lanka's oldest tea factories offering guided tours and tea tasting."},
	},
	"Ella": {
		{Name: "Nine Arch Bridge", Type: "Bridge", Rating: 4.8, Description: "Iconic colonial-era railway bridge amidst tea plantations, perfect for photography."},
		{Name: "Little Adam's Peak", Type: "Hiking Trail", Rating: 4.7, Description: "Easy hike with panoramic views of Ella Gap, mountains, and tea plantations."},
		{Name: "Ravana Falls", Type: "Waterfall", Rating: 4.5, Description: "Beautiful cascading waterfall associated with the Ramayana legend, 25m high."},
		{Name: "Ella Rock", Type: "Hiking Trail", Rating: 4.6, Description: "Challenging hike with breathtaking views of surrounding hills and valleys."},
		{Name: "Ella Spice Garden", Type: "Garden", Rating: 4.3, Description: "Educational tour of Sri Lankan spices, herbs, and traditional Ayurvedic plants."},
		{Name: "Ravana's Cave", Type: "Cave", Rating: 4.2, Description: "Historical cave associated with the Ramayana epic, located on cliffs near Ella."},
		{Name: "Ella Village", Type: "Village", Rating: 4.4, Description: "Charming mountain village with cafes, guesthouses, local shops, and friendly atmosphere."},
		{Name: "Demodara Loop", Type: "Railway Engineering", Rating: 4.3, Description: "Famous spiral railway loop engineering marvel, train passes over itself."},
		{Name: "Ella Gap Viewpoint", Type: "Viewpoint", Rating: 4.5, Description: "Spectacular views of the valley, southern plains, and distant mountains."},
		{Name: "Ella Train Station", Type: "Railway Station", Rating: 4.1, Description: "Picturesque railway station with colonial architecture and mountain views."},
	},
	"Badulla": {
		{Name: "Dunhinda Falls", Type: "Waterfall", Rating: 4.6, Description: "Magnificent 64m high waterfall, one of Sri Lanka's most beautiful waterfalls."},
		{Name: "Muthiyangana Raja Maha Viharaya", Type: "Buddhist Temple", Rating: 4.3, Description: "Ancient temple believed to be visited by Lord Buddha, important pilgrimage site."},
		{Name: "Badulla Park", Type: "Park", Rating: 4.1, Description: "Central park in Badulla town with gardens, walking paths, and colonial atmosphere."},
		{Name: "St. Mark's Church", Type: "Church", Rating: 4.0, Description: "Historic Anglican church built in 1857 with beautiful architecture and stained glass."},
		{Name: "Bogoda Wooden Bridge", Type: "Bridge", Rating: 4.4, Description: "Ancient wooden bridge from 16th century, oldest surviving wooden bridge in Sri Lanka."},
		{Name: "Halpewatte Tea Factory", Type: "Tea Factory", Rating: 4.2, Description: "Tea factory offering tours of tea processing and tasting of Uva region tea."},
		{Name: "Badulla Market", Type: "Market", Rating: 4.0, Description: "Local market with fresh produce, spices, and goods from surrounding hill country."},
		{Name: "Uma Oya", Type: "River", Rating: 4.2, Description: "Scenic river valley with waterfalls, hiking trails, and natural swimming spots."},
		{Name: "Kandyan Dance Show", Type: "Cultural Show", Rating: 4.3, Description: "Traditional Kandyan dance performances showcasing Sri Lankan culture."},
		{Name: "Badulla Railway Station", Type: "Railway Station", Rating: 4.1, Description: "Historic railway station at end of famous Colombo-Badulla train route."},
	},
	"Bandarawela": {
		{Name: "Dowa Rock Temple", Type: "Buddhist Temple", Rating: 4.4, Description: "Ancient rock temple with unfinished Buddha carving and cave paintings."},
		{Name: "Bandarawela Town", Type: "Town", Rating: 4.2, Description: "Charming hill station town with colonial architecture and cool climate."},
		{Name: "Adisham Bungalow", Type: "Historic House", Rating: 4.3, Description: "English country house style monastery with beautiful gardens and architecture."},
		{Name: "Lipton's Seat", Type: "Viewpoint", Rating: 4.7, Description: "Famous viewpoint where Sir Thomas Lipton surveyed his tea empire, panoramic views."},
		{Name: "St. Andrew's Church", Type: "Church", Rating: 4.1, Description: "Historic church built in 1908 with beautiful stained glass and architecture."},
		{Name: "Bandarawela Golf Club", Type: "Golf Course", Rating: 4.2, Description: "9-hole golf course with mountain views and challenging terrain."},
		{Name: "Bandarawela Market", Type: "Market", Rating: 4.0, Description: "Local market with fresh hill country vegetables, fruits, and local products."},
		{Name: "Diyaluma Falls", Type: "Waterfall", Rating: 4.5, Description: "Second highest waterfall in Sri Lanka (220m), with natural infinity pools at top."},
		{Name: "Bandarawela Railway Station", Type: "Railway Station", Rating: 4.1, Description: "Historic railway station on Main Line, beautiful mountain setting."},
		{Name: "Haputale", Type: "Nearby Town", Rating: 4.3, Description: "Nearby hill town with tea plantations and stunning views of southern plains."},
	},
	"Hatton": {
		{Name: "Adam's Peak", Type: "Mountain", Rating: 4.8, Description: "Sacred mountain pilgrimage site with sunrise views and Buddha's footprint shrine."},
		{Name: "St. Clair's Falls", Type: "Waterfall", Rating: 4.5, Description: "Widest waterfall in Sri Lanka, known as 'Little Niagara of Sri Lanka'."},
		{Name: "Devon Falls", Type: "Waterfall", Rating: 4.4, Description: "97m high waterfall named after English coffee planter, visible from main road."},
		{Name: "Hatton Town", Type: "Town", Rating: 4.1, Description: "Main town serving Adam's Peak pilgrims and surrounding tea plantations."},
		{Name: "Castlereagh Reservoir", Type: "Reservoir", Rating: 4.3, Description: "Beautiful reservoir surrounded by tea plantations, perfect for photography."},
		{Name: "Gartmore Falls", Type: "Waterfall", Rating: 4.2, Description: "Lesser-known waterfall near Hatton, accessible through tea estate paths."},
		{Name: "Tea Plantation Tours", Type: "Plantation", Rating: 4.4, Description: "Guided tours of tea estates to learn about tea production and processing."},
		{Name: "Hatton Market", Type: "Market", Rating: 4.0, Description: "Local market serving hill country communities with fresh produce and goods."},
		{Name: "Laxapana Falls", Type: "Waterfall", Rating: 4.3, Description: "129m high waterfall, one of Sri Lanka's highest, located near hydro power station."},
		{Name: "Adam's Peak Base Camps", Type: "Pilgrimage Site", Rating: 4.2, Description: "Starting points for Adam's Peak pilgrimage with guesthouses and facilities."},
	},
	"Sigiriya": {
		{Name: "Sigiriya Rock Fortress", Type: "Archaeological Site", Rating: 4.9, Description: "UNESCO World Heritage site, ancient rock fortress with frescoes, gardens, and palace ruins."},
		{Name: "Pidurangala Rock", Type: "Hiking Trail", Rating: 4.7, Description: "Alternative hike with best views of Sigiriya Rock, especially at sunrise."},
		{Name: "Sigiriya Museum", Type: "Museum", Rating: 4.2, Description: "Modern museum explaining Sigiriya's history, archaeology, and conservation efforts."},
		{Name: "Sigiriya Frescoes", Type: "Ancient Art", Rating: 4.6, Description: "Famous ancient paintings of celestial maidens in sheltered rock pocket."},
		{Name: "Mirror Wall", Type: "Archaeological Feature", Rating: 4.3, Description: "Ancient polished wall with historical graffiti from 8th-10th centuries."},
		{Name: "Water Gardens", Type: "Gardens", Rating: 4.4, Description: "Sophisticated ancient hydraulic engineering with pools, fountains, and gardens."},
		{Name: "Lion's Paw Terrace", Type: "Archaeological Feature", Rating: 4.5, Description: "Remains of the giant lion statue that formed entrance to summit palace."},
		{Name: "Boulder Gardens", Type: "Gardens", Rating: 4.2, Description: "Ancient garden complex with natural boulders, pathways, and pavilions."},
		{Name: "Sigiriya Village Tour", Type: "Cultural Tour", Rating: 4.3, Description: "Cultural tours of local villages to experience traditional Sri Lankan life."},
		{Name: "Elephant Safari", Type: "Wildlife Safari", Rating: 4.4, Description: "Elephant back safaris through surrounding forests and countryside."},
	},
	"Dambulla": {
		{Name: "Dambulla Cave Temple", Type: "Buddhist Temple", Rating: 4.8, Description: "UNESCO World Heritage site with five caves containing Buddha statues and murals."},
		{Name: "Golden Temple of Dambulla", Type: "Buddhist Temple", Rating: 4.4, Description: "Large golden Buddha statue and museum at base of cave temple complex."},
		{Name: "Rose Quartz Mountain", Type: "Mountain", Rating: 4.3, Description: "Unique mountain with rose quartz deposits and hiking trails with panoramic views."},
		{Name: "Ibbankatuwa Megalithic Tombs", Type: "Archaeological Site", Rating: 4.0, Description: "Ancient burial site dating back to 700 BC with stone arrangements."},
		{Name: "Dambulla Market", Type: "Market", Rating: 4.1, Description: "Vibrant local market with spices, fruits, vegetables, and local products."},
		{Name: "Na Uyana Aranya", Type: "Forest Monastery", Rating: 4.5, Description: "Large forest monastery with meditation opportunities and peaceful surroundings."},
		{Name: "Dambulla Dedicated Economic Centre", Type: "Market", Rating: 4.0, Description: "Large wholesale market for fruits and vegetables from surrounding farms."},
		{Name: "Spice Gardens", Type: "Garden", Rating: 4.2, Description: "Educational tours of spice gardens showcasing Sri Lankan spices and herbs."},
		{Name: "Kandalama Hotel", Type: "Architecture", Rating: 4.6, Description: "Iconic hotel designed by Geoffrey Bawa, blending with natural landscape."},
		{Name: "Dambulla Cricket Stadium", Type: "Sports Venue", Rating: 4.1, Description: "International cricket stadium hosting test matches and one-day internationals."},
	},
	"Polonnaruwa": {
		{Name: "Ancient City of Polonnaruwa", Type: "Archaeological Site", Rating: 4.8, Description: "UNESCO World Heritage site with well-preserved ancient ruins of Sri Lanka's medieval capital."},
		{Name: "Gal Vihara", Type: "Buddhist Statues", Rating: 4.7, Description: "Famous rock temple with four magnificent Buddha statues carved from single granite rock."},
		{Name: "Parakrama Samudra", Type: "Ancient Reservoir", Rating: 4.5, Description: "Massive ancient reservoir built by King Parakramabahu, covering 2,500 hectares."},
		{Name: "Polonnaruwa Vatadage", Type: "Ancient Structure", Rating: 4.6, Description: "Circular relic house with intricate stone carvings and moonstones."},
		{Name: "Lankatilaka Temple", Type: "Buddhist Temple", Rating: 4.4, Description: "Imposing brick temple with massive Buddha statue and architectural grandeur."},
		{Name: "Royal Palace Complex", Type: "Archaeological Site", Rating: 4.3, Description: "Ruins of the ancient royal palace, council chamber, and royal baths."},
		{Name: "Archaeological Museum", Type: "Museum", Rating: 4.1, Description: "Museum showcasing artifacts, sculptures, and information from Polonnaruwa period."},
		{Name: "Shiva Devale", Type: "Hindu Temple", Rating: 4.2, Description: "Ancient Hindu temples showing South Indian architectural influence."},
		{Name: "Statue of King Parakramabahu", Type: "Monument", Rating: 4.3, Description: "Stone statue believed to be King Parakramabahu I holding a palm-leaf manuscript."},
		{Name: "Polonnaruwa Quadrangle", Type: "Archaeological Site", Rating: 4.5, Description: "Sacred quadrangle containing most important religious monuments in compact area."},
	},
	"Anuradhapura": {
		{Name: "Sacred City of Anuradhapura", Type: "Archaeological Site", Rating: 4.8, Description: "UNESCO World Heritage site, ancient capital with sacred Buddhist sites dating to 4th century BC."},
		{Name: "Sri Maha Bodhi", Type: "Sacred Tree", Rating: 4.9, Description: "Oldest historically documented tree in the world, grown from Buddha's enlightenment tree branch."},
		{Name: "Ruwanwelisaya Stupa", Type: "Buddhist Stupa", Rating: 4.7, Description: "Massive white stupa built by King Dutugemunu, one of Sri Lanka's most revered."},
		{Name: "Jetavanaramaya Stupa", Type: "Buddhist Stupa", Rating: 4.6, Description: "One of the tallest ancient structures in the world when built (122m)."},
		{Name: "Abhayagiri Monastery", Type: "Monastery Complex", Rating: 4.5, Description: "Ancient monastery complex with museum, twin ponds, and massive stupa."},
		{Name: "Isurumuniya Temple", Type: "Buddhist Temple", Rating: 4.4, Description: "Rock temple famous for its rock carvings including 'Isurumuniya Lovers'."},
		{Name: "Samadhi Buddha Statue", Type: "Buddhist Statue", Rating: 4.6, Description: "Famous granite Buddha statue in meditation pose, considered masterpiece of ancient sculpture."},
		{Name: "Kuttam Pokuna", Type: "Ancient Ponds", Rating: 4.3, Description: "Twin ponds showcasing ancient Sinhalese engineering and symmetry."},
		{Name: "Mihintale", Type: "Sacred Mountain", Rating: 4.7, Description: "Birthplace of Buddhism in Sri Lanka, pilgrimage site with temples and stupas."},
		{Name: "Archaeological Museum", Type: "Museum", Rating: 4.2, Description: "Museum showcasing artifacts from Anuradhapura period and explaining site's history."},
	},
	"Trincomalee": {
		{Name: "Nilaveli Beach", Type: "Beach", Rating: 4.7, Description: "One of Sri Lanka's most beautiful beaches with white sand and clear turquoise water."},
		{Name: "Pigeon Island National Park", Type: "National Park", Rating: 4.6, Description: "Marine national park ideal for snorkeling, diving, and coral reef exploration."},
		{Name: "Fort Frederick", Type: "Fort", Rating: 4.3, Description: "Historic fort built by Portuguese and expanded by Dutch, now housing military base."},
		{Name: "Koneswaram Temple", Type: "Hindu Temple", Rating: 4.5, Description: "Ancient Hindu temple complex on Swami Rock with panoramic ocean views."},
		{Name: "Marble Beach", Type: "Beach", Rating: 4.4, Description: "Secluded beach with marble-like sand and crystal clear water, within Air Force base."},
		{Name: "Uppuveli Beach", Type: "Beach", Rating: 4.3, Description: "Long sandy beach popular for swimming, water sports, and beachfront accommodation."},
		{Name: "Trinco Whale Watching", Type: "Wildlife Tour", Rating: 4.5, Description: "Whale watching tours in the Bay of Bengal to spot blue whales and dolphins."},
		{Name: "Lovers' Leap", Type: "Viewpoint", Rating: 4.2, Description: "Cliff viewpoint with tragic love story legend and ocean views."},
		{Name: "Trincomalee War Cemetery", Type: "Memorial", Rating: 4.1, Description: "Commonwealth war cemetery honoring soldiers from World War II."},
		{Name: "Trincomalee Harbor", Type: "Harbor", Rating: 4.0, Description: "One of world's finest natural harbors, fifth largest natural harbor globally."},
	},
	"Batticaloa": {
		{Name: "Batticaloa Lagoon", Type: "Lagoon", Rating: 4.4, Description: "Sri Lanka's second largest lagoon, perfect for boat rides, birdwatching, and sunset views."},
		{Name: "Kallady Bridge", Type: "Bridge", Rating: 4.2, Description: "Iconic Dutch-era bridge connecting Batticaloa town to Kallady, known for singing fish phenomenon."},
		{Name: "Batticaloa Fort", Type: "Fort", Rating: 4.3, Description: "Dutch fort built in 1628, overlooking the lagoon with historical significance and architecture."},
		{Name: "Pasikudah Beach", Type: "Beach", Rating: 4.6, Description: "One of Sri Lanka's finest beaches with shallow turquoise waters, perfect for swimming."},
		{Name: "Kalkudah Beach", Type: "Beach", Rating: 4.5, Description: "Long, flat beach ideal for swimming, windsurfing, and water sports with gentle waves."},
		{Name: "St. Mary's Cathedral", Type: "Church", Rating: 4.2, Description: "Beautiful Catholic cathedral with impressive architecture in heart of Batticaloa."},
		{Name: "Batticaloa Lighthouse", Type: "Lighthouse", Rating: 4.1, Description: "Historic lighthouse on edge of Batticaloa Lagoon with panoramic views."},
		{Name: "Navatkuli Bridge", Type: "Bridge", Rating: 4.0, Description: "British-era bridge with scenic views of lagoon and surrounding landscape."},
		{Name: "Koddamunai Hindu Temple", Type: "Hindu Temple", Rating: 4.3, Description: "Prominent Hindu temple showcasing Tamil architecture and cultural significance."},
		{Name: "Batticaloa Dutch Bar Heritage Museum", Type: "Museum", Rating: 4.1, Description: "Museum in restored Dutch-era building showcasing colonial history and artifacts."},
	},
	"Pasikudah": {
		{Name: "Pasikudah Beach", Type: "Beach", Rating: 4.7, Description: "Famous for its shallow, calm turquoise waters extending 100-200m from shore, perfect for swimming."},
		{Name: "Coral Reefs", Type: "Marine Life", Rating: 4.5, Description: "Protected coral reefs ideal for snorkeling and observing marine biodiversity."},
		{Name: "Kalkudah Beach", Type: "Beach", Rating: 4.6, Description: "Adjacent beach with similar shallow waters, less developed and more natural."},
		{Name: "Water Sports Center", Type: "Adventure Sports", Rating: 4.3, Description: "Jet skiing, banana boat rides, kayaking, and other water activities."},
		{Name: "Beach Resorts", Type: "Accommodation", Rating: 4.4, Description: "Luxury beachfront resorts with spa facilities, pools, and fine dining."},
		{Name: "Sunset Views", Type: "Viewpoint", Rating: 4.6, Description: "Spectacular sunsets over Bay of Bengal with colors reflecting on calm waters."},
		{Name: "Beach Walks", Type: "Beach Activity", Rating: 4.4, Description: "Long, peaceful walks along pristine shoreline, especially enjoyable at sunrise."},
		{Name: "Local Fishing Village", Type: "Cultural Experience", Rating: 4.2, Description: "Visit traditional fishing village to see local lifestyle and fishing techniques."},
		{Name: "Beachfront Dining", Type: "Dining", Rating: 4.3, Description: "Restaurants serving fresh seafood with beach views and ocean breeze."},
		{Name: "Paddle Boarding", Type: "Water Sport", Rating: 4.4, Description: "Stand-up paddle boarding in calm, shallow waters suitable for beginners."},
	},
	"Arugam Bay": {
		{Name: "Arugam Bay Beach", Type: "Beach", Rating: 4.7, Description: "World-class surfing destination with consistent waves, laid-back vibe, and beautiful beach."},
		{Name: "Pottuvil Point", Type: "Surf Spot", Rating: 4.6, Description: "Famous surfing point break for experienced surfers, best during April-October season."},
		{Name: "Lahugala National Park", Type: "National Park", Rating: 4.3, Description: "Elephant sanctuary with natural water holes, birdwatching, and wildlife."},
		{Name: "Muhudu Maha Viharaya", Type: "Buddhist Temple", Rating: 4.2, Description: "Ancient temple with beachfront location and archaeological significance."},
		{Name: "Elephant Rock", Type: "Viewpoint", Rating: 4.4, Description: "Hiking spot with panoramic views of Arugam Bay and surrounding coastline."},
		{Name: "Panama Beach", Type: "Beach", Rating: 4.5, Description: "Secluded beach ideal for swimming, relaxation, and escaping crowds."},
		{Name: "Surf Schools", Type: "Surfing Lessons", Rating: 4.5, Description: "Professional surf schools offering lessons for beginners and intermediate surfers."},
		{Name: "Crocodile Rock", Type: "Surf Spot", Rating: 4.4, Description: "Surfing spot named for crocodile-shaped rock formation, suitable for experienced surfers."},
		{Name: "Arugam Bay Lagoon", Type: "Lagoon", Rating: 4.3, Description: "Calm lagoon perfect for kayaking, paddle boarding, and birdwatching."},
		{Name: "Beach Bars", Type: "Nightlife", Rating: 4.2, Description: "Beachfront bars and restaurants with live music, bonfires, and international cuisine."},
	},
	"Jaffna": {
		{Name: "Jaffna Fort", Type: "Fort", Rating: 4.4, Description: "Dutch fort built in 1680, one of best preserved Dutch forts in Sri Lanka."},
		{Name: "Nallur Kandaswamy Temple", Type: "Hindu Temple", Rating: 4.7, Description: "Large Hindu temple complex, most significant in Jaffna, famous for annual festival."},
		{Name: "Jaffna Public Library", Type: "Library", Rating: 4.3, Description: "Iconic library symbolizing Tamil heritage and revival, rebuilt after 1981 fire."},
		{Name: "Nagadeepa Purana Viharaya", Type: "Buddhist Temple", Rating: 4.5, Description: "Ancient Buddhist temple on Nagadeepa Island, accessible by ferry."},
		{Name: "Keerimalai Springs", Type: "Natural Springs", Rating: 4.2, Description: "Natural freshwater springs with separate bathing ponds for men and women."},
		{Name: "Jaffna Market", Type: "Market", Rating: 4.1, Description: "Bustling local market with fresh produce, Tamil sweets, and cultural experience."},
		{Name: "Casuarina Beach", Type: "Beach", Rating: 4.3, Description: "Beautiful beach with casuarina trees, ideal for sunset walks and relaxation."},
		{Name: "Point Pedro", Type: "Town", Rating: 4.2, Description: "Northernmost point of Sri Lanka with lighthouse and fishing harbor."},
		{Name: "Kankesanturai Beach", Type: "Beach", Rating: 4.3, Description: "Pristine beach near Kankesanturai port, less crowded with natural beauty."},
		{Name: "Jaffna Archaeological Museum", Type: "Museum", Rating: 4.0, Description: "Museum showcasing artifacts from Jaffna kingdom and Hindu cultural heritage."},
	},
	"Mannar": {
		{Name: "Adam's Bridge", Type: "Natural Formation", Rating: 4.5, Description: "Chain of limestone shoals between India and Sri Lanka, visible from Mannar."},
		{Name: "Mannar Fort", Type: "Fort", Rating: 4.2, Description: "Portuguese then Dutch fort overlooking Gulf of Mannar, built in 1560."},
		{Name: "Baobab Tree", Type: "Tree", Rating: 4.4, Description: "Ancient baobab tree believed to be 700 years old, brought by Arab traders."},
		{Name: "Mannar Island", Type: "Island", Rating: 4.3, Description: "Island connected to mainland by causeway, known for salt production and fishing."},
		{Name: "Thanthirimale Temple", Type: "Buddhist Temple", Rating: 4.3, Description: "Ancient temple with rock inscriptions and connections to arrival of Buddhism."},
		{Name: "Giant's Tank", Type: "Reservoir", Rating: 4.1, Description: "Ancient irrigation tank built by King Dhatusena in 5th century AD."},
		{Name: "Mannar Beach", Type: "Beach", Rating: 4.2, Description: "Long, windy beach with shell collecting opportunities and sunset views."},
		{Name: "Our Lady of Madhu Church", Type: "Church", Rating: 4.4, Description: "Important Catholic pilgrimage site with shrine of Our Lady of Madhu."},
		{Name: "Mannar Market", Type: "Market", Rating: 4.0, Description: "Local market with seafood, dry fish, and products unique to Mannar region."},
		{Name: "Birdwatching Sites", Type: "Bird Sanctuary", Rating: 4.3, Description: "Important area for migratory birds including flamingos during season."},
	},
	"Vavuniya": {
		{Name: "Vavuniya Museum", Type: "Museum", Rating: 4.1, Description: "Local museum showcasing artifacts and information about Vavuniya region."},
		{Name: "Kandasamy Kovil", Type: "Hindu Temple", Rating: 4.2, Description: "Prominent Hindu temple in Vavuniya with colorful architecture."},
		{Name: "Vavuniya Tank", Type: "Reservoir", Rating: 4.0, Description: "Ancient irrigation tank providing water to surrounding agricultural areas."},
		{Name: "Pandivirichchan Thermal Springs", Type: "Hot Springs", Rating: 4.3, Description: "Natural thermal springs believed to have medicinal properties."},
		{Name: "Vavuniya Market", Type: "Market", Rating: 4.0, Description: "Main market serving northern region with diverse goods and produce."},
		{Name: "Sivapuram Temple", Type: "Hindu Temple", Rating: 4.1, Description: "Ancient temple with cultural and religious significance."},
		{Name: "Vavuniya Town", Type: "Town", Rating: 4.0, Description: "Gateway town to northern province with administrative and commercial importance."},
		{Name: "Agriculture Farms", Type: "Farm", Rating: 4.1, Description: "Visit local farms to see cultivation of crops like onions, chilies, and grains."},
		{Name: "Community Projects", Type: "Cultural Experience", Rating: 4.2, Description: "Community-based tourism initiatives showcasing local life and traditions."},
		{Name: "Historical Sites", Type: "Archaeological Site", Rating: 4.1, Description: "Various historical sites reflecting region's diverse cultural heritage."},
	},
	"Yala": {
		{Name: "Yala National Park", Type: "National Park", Rating: 4.8, Description: "Sri Lanka's most famous wildlife park for leopard and elephant sightings, diverse ecosystems."},
		{Name: "Sithulpawwa Rajamaha Viharaya", Type: "Buddhist Monastery", Rating: 4.4, Description: "Ancient rock temple with archaeological significance and meditation caves."},
		{Name: "Kumana National Park", Type: "National Park", Rating: 4.6, Description: "Birdwatcher's paradise adjacent to Yala, known for migratory birds and lagoons."},
		{Name: "Patangala", Type: "Archaeological Site", Rating: 4.2, Description: "Ancient cave complex with Brahmi inscriptions and archaeological importance."},
		{Name: "Yala Safari Experience", Type: "Wildlife Safari", Rating: 4.7, Description: "Jeep safaris to spot leopards, elephants, sloth bears, and diverse wildlife."},
		{Name: "Yala Village", Type: "Local Village", Rating: 4.0, Description: "Experience local culture and traditional Sri Lankan life in nearby villages."},
		{Name: "Yala Beach", Type: "Beach", Rating: 4.3, Description: "Pristine beach within Yala National Park with nesting turtles."},
		{Name: "Buttala", Type: "Town", Rating: 3.9, Description: "Nearby town with local markets, temples, and cultural sites."},
		{Name: "Magul Maha Viharaya", Type: "Buddhist Temple", Rating: 4.2, Description: "Ancient temple believed to be where King Kavantissa married Princess Viharamahadevi."},
		{Name: "Wildlife Photography", Type: "Photography", Rating: 4.6, Description: "Excellent opportunities for wildlife photography with professional guides."},
	},
	"Udawalawe": {
		{Name: "Udawalawe National Park", Type: "National Park", Rating: 4.7, Description: "Best place in Sri Lanka to see elephants in large herds, also home to other wildlife."},
		{Name: "Udawalawe Elephant Transit Home", Type: "Conservation Center", Rating: 4.6, Description: "Elephant orphanage where baby elephants are cared for before release to wild."},
		{Name: "Udawalawe Reservoir", Type: "Reservoir", Rating: 4.4, Description: "Large irrigation reservoir attracting birds and wildlife, scenic views."},
		{Name: "Safari Tours", Type: "Wildlife Safari", Rating: 4.7, Description: "Jeep safaris through national park to see elephants, birds, and other animals."},
		{Name: "Birdwatching", Type: "Bird Sanctuary", Rating: 4.5, Description: "Excellent birdwatching with over 200 bird species including many endemic."},
		{Name: "Elephant Feeding", Type: "Wildlife Experience", Rating: 4.3, Description: "Observe feeding times at elephant transit home (3 times daily)."},
		{Name: "Butterfly Park", Type: "Park", Rating: 4.1, Description: "Park showcasing Sri Lanka's diverse butterfly species and their life cycles."},
		{Name: "Local Villages", Type: "Cultural Experience", Rating: 4.2, Description: "Visit traditional villages to see rural Sri Lankan life and agriculture."},
		{Name: "Scenic Drives", Type: "Scenic Route", Rating: 4.3, Description: "Beautiful drives through rural landscapes and reservoir views."},
		{Name: "Conservation Education", Type: "Educational", Rating: 4.4, Description: "Educational programs about elephant conservation and wildlife protection."},
	},
	"Wilpattu": {
		{Name: "Wilpattu National Park", Type: "National Park", Rating: 4.7, Description: "Sri Lanka's largest national park known for natural lakes (villus) and leopard sightings."},
		{Name: "Safari Tours", Type: "Wildlife Safari", Rating: 4.6, Description: "Full-day jeep safaris to explore diverse habitats and spot wildlife."},
		{Name: "Leopard Tracking", Type: "Wildlife Experience", Rating: 4.5, Description: "Specialized tours focusing on leopard sightings and behavior observation."},
		{Name: "Birdwatching", Type: "Bird Sanctuary", Rating: 4.4, Description: "Over 200 bird species including many migratory and endemic birds."},
		{Name: "Natural Lakes (Villus)", Type: "Lakes", Rating: 4.3, Description: "Characteristic natural lakes that give Wilpattu its name (Land of Lakes)."},
		{Name: "Kudiramalai Point", Type: "Historical Site", Rating: 4.2, Description: "Historical site with archaeological significance and ocean views."},
		{Name: "Ancient Ruins", Type: "Archaeological Site", Rating: 4.1, Description: "Remains of ancient civilizations within park boundaries."},
		{Name: "Wildlife Photography", Type: "Photography", Rating: 4.6, Description: "Excellent opportunities for wildlife and landscape photography."},
		{Name: "Camping", Type: "Camping", Rating: 4.3, Description: "Wildlife camping experiences within designated areas of the park."},
		{Name: "Conservation Areas", Type: "Conservation", Rating: 4.4, Description: "Protected areas showcasing Sri Lanka's commitment to wildlife conservation."},
	},
	"Kitulgala": {
		{Name: "White Water Rafting", Type: "Adventure Sports", Rating: 4.7, Description: "Sri Lanka's best white water rafting on Kelani River with Grade 2-3 rapids."},
		{Name: "Belilena Cave", Type: "Cave", Rating: 4.4, Description: "Archaeological cave where 12,000-year-old human remains were discovered."},
		{Name: "Kitulgala Forest Reserve", Type: "Forest Reserve", Rating: 4.5, Description: "Beautiful rainforest area with hiking trails and biodiversity."},
		{Name: "The Bridge on the River Kwai", Type: "Film Location", Rating: 4.3, Description: "Location where 1957 film was shot, though bridge was destroyed for film."},
		{Name: "Waterfall Abseiling", Type: "Adventure Sports", Rating: 4.6, Description: "Abseiling down waterfalls in surrounding jungle areas."},
		{Name: "Jungle Trekking", Type: "Hiking Trail", Rating: 4.4, Description: "Guided treks through rainforest to see wildlife and waterfalls."},
		{Name: "Birdwatching", Type: "Bird Sanctuary", Rating: 4.3, Description: "Excellent birdwatching with many endemic Sri Lankan species."},
		{Name: "Canyoning", Type: "Adventure Sports", Rating: 4.5, Description: "Canyoning adventures combining climbing, swimming, and jumping."},
		{Name: "Kayaking", Type: "Water Sport", Rating: 4.4, Description: "Kayaking on Kelani River through scenic gorges and rapids."},
		{Name: "Camping", Type: "Camping", Rating: 4.3, Description: "Riverside camping experiences with bonfires and nature immersion."},
	},
	"Ratnapura": {
		{Name: "Gem Mines", Type: "Mine", Rating: 4.5, Description: "Visit working gem mines to see extraction of precious stones including sapphires and rubies."},
		{Name: "Gemological Museum", Type: "Museum", Rating: 4.3, Description: "Museum showcasing Sri Lanka's gem industry, history, and precious stones."},
		{Name: "Sinharaja Forest Reserve", Type: "Forest Reserve", Rating: 4.7, Description: "UNESCO World Heritage site, biodiversity hotspot with endemic species."},
		{Name: "Bopath Falls", Type: "Waterfall", Rating: 4.4, Description: "Waterfall shaped like Bo leaf (sacred fig), 30m high with pool for swimming."},
		{Name: "Ratnapura Market", Type: "Market", Rating: 4.2, Description: "Famous gem market where traders buy and sell precious stones."},
		{Name: "Mahaweli River", Type: "River", Rating: 4.1, Description: "Longest river in Sri Lanka, scenic spots for picnics and river baths."},
		{Name: "Gem Cutting Workshops", Type: "Workshop", Rating: 4.3, Description: "See traditional gem cutting and polishing techniques by skilled artisans."},
		{Name: "Ancient Temples", Type: "Buddhist Temple", Rating: 4.2, Description: "Several ancient temples in and around Ratnapura with historical significance."},
		{Name: "Tea Estates", Type: "Plantation", Rating: 4.3, Description: "Tea plantations in surrounding hills producing quality low-grown tea."},
		{Name: "Agricultural Farms", Type: "Farm", Rating: 4.1, Description: "Farms producing spices, fruits, and vegetables in fertile Ratnapura region."},
	},
	"Kalutara": {
		{Name: "Kalutara Bodhiya", Type: "Buddhist Temple", Rating: 4.4, Description: "Sacred Bodhi tree and temple complex with beautiful white stupa."},
		{Name: "Kalutara Beach", Type: "Beach", Rating: 4.3, Description: "Long sandy beach popular for swimming, sunset views, and water sports."},
		{Name: "Richmond Castle", Type: "Historic House", Rating: 4.2, Description: "Colonial mansion built in 1896, now cultural center with gardens."},
		{Name: "Kalu Ganga River", Type: "River", Rating: 4.1, Description: "River trips and fishing experiences on Kalutara's namesake river."},
		{Name: "Fa Hien Cave", Type: "Cave", Rating: 4.3, Description: "Archaeological cave where remains of prehistoric humans were discovered."},
		{Name: "Kalutara Temple", Type: "Buddhist Temple", Rating: 4.2, Description: "Hollow stupa containing smaller stupa inside, unique architectural feature."},
		{Name: "Water Sports", Type: "Adventure Sports", Rating: 4.3, Description: "Jet skiing, banana boat rides, and other beach activities."},
		{Name: "Local Markets", Type: "Market", Rating: 4.0, Description: "Markets selling fresh seafood, local produce, and handicrafts."},
		{Name: "Sunset Cruises", Type: "Boat Tour", Rating: 4.4, Description: "Boat trips on Kalu Ganga River during sunset hours."},
		{Name: "Garden Restaurants", Type: "Dining", Rating: 4.2, Description: "Riverside and garden restaurants serving fresh seafood and local cuisine."},
	},
	"Beruwala": {
		{Name: "Beruwala Beach", Type: "Beach", Rating: 4.4, Description: "Long golden beach with calm waters, popular for swimming and family vacations."},
		{Name: "Kande Viharaya", Type: "Buddhist Temple", Rating: 4.5, Description: "Temple with giant standing Buddha statue, important Buddhist site."},
		{Name: "Barberyn Lighthouse", Type: "Lighthouse", Rating: 4.3, Description: "Historic lighthouse on small island, accessible during low tide."},
		{Name: "Masjid-ul-Abrar", Type: "Mosque", Rating: 4.2, Description: "One of Sri Lanka's oldest mosques, built by Arab traders in 920 AD."},
		{Name: "Water Sports Center", Type: "Adventure Sports", Rating: 4.3, Description: "Various water activities including jet skiing, parasailing, and boat rides."},
		{Name: "Moragalla Beach", Type: "Beach", Rating: 4.4, Description: "Less crowded beach section with pristine sand and clear water."},
		{Name: "Traditional Fishing", Type: "Cultural Experience", Rating: 4.2, Description: "Observe traditional stilt fishing and local fishing techniques."},
		{Name: "Spice Garden Tours", Type: "Garden", Rating: 4.1, Description: "Educational tours of spice gardens showcasing Sri Lankan spices."},
		{Name: "Beach Resorts", Type: "Accommodation", Rating: 4.3, Description: "Range of beachfront resorts with amenities and ocean views."},
		{Name: "Local Crafts", Type: "Shopping", Rating: 4.0, Description: "Purchase traditional Sri Lankan crafts, batik, and souvenirs."},
	},
	"Chilaw": {
		{Name: "Munneswaram Temple", Type: "Hindu Temple", Rating: 4.5, Description: "Important Hindu temple complex dedicated to Lord Shiva, pilgrimage site."},
		{Name: "Chilaw Beach", Type: "Beach", Rating: 4.2, Description: "Fishing beach with colorful boats, fresh seafood, and local atmosphere."},
		{Name: "St. Mary's Church", Type: "Church", Rating: 4.1, Description: "Historic church with beautiful architecture and religious significance."},
		{Name: "Chilaw Fishing Harbor", Type: "Harbor", Rating: 4.0, Description: "Active fishing harbor where daily catch is brought in and auctioned."},
		{Name: "Anawilundawa Bird Sanctuary", Type: "Bird Sanctuary", Rating: 4.4, Description: "Ramsar wetland site with diverse birdlife including migratory species."},
		{Name: "Dutch Church", Type: "Church", Rating: 4.0, Description: "Remains of Dutch colonial church with historical significance."},
		{Name: "Crab Farming", Type: "Aquaculture", Rating: 4.2, Description: "Visit crab farms to see mud crab cultivation and processing."},
		{Name: "Local Cuisine", Type: "Dining", Rating: 4.3, Description: "Fresh seafood restaurants specializing in crab and fish dishes."},
		{Name: "Traditional Industries", Type: "Cultural Experience", Rating: 4.1, Description: "See traditional industries like coir making and fishing net weaving."},
		{Name: "Paddy Fields", Type: "Agricultural Landscape", Rating: 4.2, Description: "Extensive paddy fields surrounding Chilaw, important rice growing area."},
	},
	"Puttalam": {
		{Name: "Puttalam Lagoon", Type: "Lagoon", Rating: 4.3, Description: "Extensive lagoon system with mangrove forests and birdwatching opportunities."},
		{Name: "Kalpitiya Beach", Type: "Beach", Rating: 4.5, Description: "Long sandy beach popular for kitesurfing, windsurfing, and dolphin watching."},
		{Name: "Wilpattu National Park", Type: "National Park", Rating: 4.6, Description: "Access to Sri Lanka's largest national park from Puttalam side."},
		{Name: "Dutch Canal", Type: "Canal", Rating: 4.1, Description: "Historic canal built by Dutch connecting Puttalam to Colombo."},
		{Name: "St. Anne's Church", Type: "Church", Rating: 4.2, Description: "Historic church in Talawila, important Catholic pilgrimage site."},
		{Name: "Kitesurfing Centers", Type: "Adventure Sports", Rating: 4.5, Description: "Professional kitesurfing schools and equipment rentals in Kalpitiya."},
		{Name: "Dolphin Watching", Type: "Wildlife Tour", Rating: 4.4, Description: "Boat tours to see large pods of dolphins in Kalpitiya waters."},
		{Name: "Salt Pans", Type: "Industry", Rating: 4.1, Description: "Traditional salt production using evaporation ponds, important local industry."},
		{Name: "Mangrove Forests", Type: "Forest", Rating: 4.2, Description: "Boat tours through mangrove ecosystems with diverse flora and fauna."},
		{Name: "Fishing Villages", Type: "Cultural Experience", Rating: 4.1, Description: "Visit traditional fishing communities along Puttalam coastline."},
	},
	"Matara": {
		{Name: "Star Fort", Type: "Fort", Rating: 4.3, Description: "Unique star-shaped Dutch fort built in 1765, now housing museum."},
		{Name: "Matara Paravi Duwa Temple", Type: "Buddhist Temple", Rating: 4.2, Description: "Temple on small island connected by bridge, picturesque setting."},
		{Name: "Polhena Beach", Type: "Beach", Rating: 4.4, Description: "Sheltered beach with coral reef, ideal for snorkeling and safe swimming."},
		{Name: "Weherahena Temple", Type: "Buddhist Temple", Rating: 4.5, Description: "Unique temple with tunnel depicting Buddhist hell and heaven scenes."},
		{Name: "Matara Beach", Type: "Beach", Rating: 4.3, Description: "Main beach area with promenade, restaurants, and sunset views."},
		{Name: "Dutch Reformed Church", Type: "Church", Rating: 4.1, Description: "Historic Dutch church built in 1706, still in use today."},
		{Name: "Nilwala River", Type: "River", Rating: 4.2, Description: "River trips and boat rides on Matara's main river."},
		{Name: "Local Markets", Type: "Market", Rating: 4.0, Description: "Vibrant markets selling fresh produce, seafood, and local goods."},
		{Name: "Historical Museum", Type: "Museum", Rating: 4.1, Description: "Museum showcasing Matara's history and cultural heritage."},
		{Name: "Dondra Lighthouse", Type: "Lighthouse", Rating: 4.2, Description: "Southernmost point of Sri Lanka with lighthouse and ocean views."},
	},
	"Hambantota": {
		{Name: "Yala National Park", Type: "National Park", Rating: 4.7, Description: "Access to famous Yala National Park from Hambantota side."},
		{Name: "Hambantota Port", Type: "Port", Rating: 4.1, Description: "Deep sea port built with Chinese assistance, engineering marvel."},
		{Name: "Mattala Rajapaksa International Airport", Type: "Airport", Rating: 4.0, Description: "Second international airport in Sri Lanka, interesting architecture."},
		{Name: "Bundala National Park", Type: "National Park", Rating: 4.4, Description: "Ramsar wetland site important for migratory birds and wildlife."},
		{Name: "Hambantota Cricket Stadium", Type: "Sports Venue", Rating: 4.2, Description: "International cricket stadium hosting major matches."},
		{Name: "Bird Sanctuary", Type: "Bird Sanctuary", Rating: 4.3, Description: "Important area for birdwatching, especially wetland species."},
		{Name: "Salt Pans", Type: "Industry", Rating: 4.1, Description: "Traditional salt production using natural evaporation."},
		{Name: "Local Fisheries", Type: "Industry", Rating: 4.0, Description: "Fishing industry and fresh seafood markets."},
		{Name: "Development Projects", Type: "Modern Infrastructure", Rating: 4.1, Description: "See modern infrastructure development in Hambantota region."},
		{Name: "Rural Villages", Type: "Cultural Experience", Rating: 4.2, Description: "Traditional village life in southern Sri Lanka."},
	},
	"Ampara": {
		{Name: "Lahugala National Park", Type: "National Park", Rating: 4.3, Description: "Elephant sanctuary with natural water holes and wildlife."},
		{Name: "Deegawapiya Temple", Type: "Buddhist Temple", Rating: 4.4, Description: "Ancient temple believed to be visited by Lord Buddha."},
		{Name: "Ampara Tank", Type: "Reservoir", Rating: 4.1, Description: "Large irrigation reservoir supporting agriculture in dry zone."},
		{Name: "Gal Oya National Park", Type: "National Park", Rating: 4.4, Description: "Boat safaris to see elephants swimming between islands."},
		{Name: "Senanayake Samudraya", Type: "Reservoir", Rating: 4.3, Description: "Largest reservoir in Sri Lanka, scenic and important for irrigation."},
		{Name: "Ancient Buddhist Sites", Type: "Archaeological Site", Rating: 4.2, Description: "Several ancient Buddhist monasteries and ruins in Ampara district."},
		{Name: "Agriculture Farms", Type: "Farm", Rating: 4.1, Description: "Visit farms growing rice, vegetables, and fruits in fertile Ampara region."},
		{Name: "Local Markets", Type: "Market", Rating: 4.0, Description: "Markets serving agricultural communities in eastern Sri Lanka."},
		{Name: "Traditional Crafts", Type: "Crafts", Rating: 4.1, Description: "Local crafts including pottery, weaving, and woodwork."},
		{Name: "Cultural Diversity", Type: "Cultural Experience", Rating: 4.2, Description: "Experience multicultural society with Sinhalese, Tamil, and Muslim communities."},
	},
	"Monaragala": {
		{Name: "Maligawila Buddha Statue", Type: "Buddhist Statue", Rating: 4.4, Description: "Ancient standing Buddha statue from 7th century, 11.5m tall."},
		{Name: "Buddhangala Monastery", Type: "Buddhist Monastery", Rating: 4.3, Description: "Ancient forest monastery with archaeological remains and meditation opportunities."},
		{Name: "Monaragala Town", Type: "Town", Rating: 4.0, Description: "Main town serving southeastern region with local markets and services."},
		{Name: "Agricultural Areas", Type: "Agricultural Landscape", Rating: 4.1, Description: "Extensive agricultural lands growing rice, fruits, and vegetables."},
		{Name: "Traditional Villages", Type: "Cultural Experience", Rating: 4.2, Description: "Visit traditional villages to see rural Sri Lankan life."},
		{Name: "Natural Springs", Type: "Natural Springs", Rating: 4.1, Description: "Natural freshwater springs used by local communities."},
		{Name: "Forest Areas", Type: "Forest", Rating: 4.2, Description: "Dry zone forests with hiking opportunities and wildlife."},
		{Name: "Local Crafts", Type: "Crafts", Rating: 4.0, Description: "Traditional crafts including pottery, basket weaving, and wood carving."},
		{Name: "Agricultural Markets", Type: "Market", Rating: 4.1, Description: "Markets selling agricultural produce from Monaragala region."},
		{Name: "Rural Tourism", Type: "Cultural Experience", Rating: 4.2, Description: "Community-based tourism initiatives showcasing local culture."},
	},
	"Kurunegala": {
		{Name: "Ethagala (Elephant Rock)", Type: "Rock Formation", Rating: 4.3, Description: "Large rock formation resembling elephant, landmark of Kurunegala."},
		{Name: "Yapahuwa Rock Fortress", Type: "Archaeological Site", Rating: 4.5, Description: "Ancient rock fortress and palace with impressive staircase and architecture."},
		{Name: "Panduwasnuwara", Type: "Archaeological Site", Rating: 4.2, Description: "Ancient capital with ruins, palace site, and Buddhist monuments."},
		{Name: "Kurunegala Lake", Type: "Lake", Rating: 4.1, Description: "Artificial lake in town center with walking paths and gardens."},
		{Name: "Ridi Viharaya", Type: "Buddhist Temple", Rating: 4.4, Description: "Ancient temple complex with silver deposits, historically significant."},
		{Name: "Arankele Monastery", Type: "Buddhist Monastery", Rating: 4.3, Description: "Forest monastery with meditation caves and ancient ruins."},
		{Name: "Local Markets", Type: "Market", Rating: 4.0, Description: "Busy markets serving northwestern province with diverse goods."},
		{Name: "Agriculture", Type: "Agricultural Landscape", Rating: 4.1, Description: "Visit farms growing rice, coconut, and fruits in fertile region."},
		{Name: "Historical Sites", Type: "Archaeological Site", Rating: 4.2, Description: "Several historical sites reflecting Kurunegala's ancient importance."},
		{Name: "Temple Circuit", Type: "Religious Tour", Rating: 4.3, Description: "Tour of important Buddhist temples in and around Kurunegala."},
	},
	"Kegalle": {
		{Name: "Pinnawala Elephant Orphanage", Type: "Conservation Center", Rating: 4.6, Description: "World's largest captive elephant herd, famous for elephant bathing and feeding times."},
		{Name: "Elephant Bathing", Type: "Wildlife Experience", Rating: 4.7, Description: "Watch elephants bathing in river at scheduled times, popular photo opportunity."},
		{Name: "Millennium Elephant Foundation", Type: "Conservation Center", Rating: 4.4, Description: "Elephant conservation and welfare organization offering educational programs."},
		{Name: "Kegalle Town", Type: "Town", Rating: 4.0, Description: "Town serving central province with local markets and services."},
		{Name: "Spice Gardens", Type: "Garden", Rating: 4.2, Description: "Educational tours of spice gardens showcasing Sri Lankan spices."},
		{Name: "Traditional Industries", Type: "Cultural Experience", Rating: 4.1, Description: "See traditional industries like gem mining and agriculture."},
		{Name: "Elephant Back Rides", Type: "Wildlife Experience", Rating: 4.3, Description: "Ethical elephant back rides through designated areas."},
		{Name: "Local Markets", Type: "Market", Rating: 4.0, Description: "Markets selling local produce, spices, and handicrafts."},
		{Name: "Rubber Plantations", Type: "Plantation", Rating: 4.1, Description: "Visit rubber plantations to see latex collection and processing."},
		{Name: "Scenic Countryside", Type: "Scenic Route", Rating: 4.2, Description: "Beautiful drives through Kegalle's hilly countryside and plantations."},
	},
	"Matale": {
		{Name: "Aluvihara Rock Temple", Type: "Buddhist Temple", Rating: 4.4, Description: "Ancient cave temple where Buddhist scriptures were first written on palm leaves."},
		{Name: "Matale Spice Gardens", Type: "Garden", Rating: 4.3, Description: "Educational tours of spice gardens in Sri Lanka's spice capital."},
		{Name: "Sri Muthumariamman Temple", Type: "Hindu Temple", Rating: 4.2, Description: "Colorful Hindu temple with impressive architecture and festivals."},
		{Name: "Knuckles Mountain Range", Type: "Mountain Range", Rating: 4.6, Description: "UNESCO World Heritage site with hiking, waterfalls, and biodiversity."},
		{Name: "Riverston", Type: "Viewpoint", Rating: 4.5, Description: "Spectacular viewpoint in Knuckles Range with panoramic mountain views."},
		{Name: "Matale Market", Type: "Market", Rating: 4.1, Description: "Famous spice market with wide variety of fresh spices and herbs."},
		{Name: "Ancient Temples", Type: "Buddhist Temple", Rating: 4.2, Description: "Several ancient Buddhist temples in and around Matale."},
		{Name: "Spice Processing", Type: "Industry", Rating: 4.2, Description: "See traditional spice processing and packaging methods."},
		{Name: "Hiking Trails", Type: "Hiking Trail", Rating: 4.4, Description: "Various hiking trails in Knuckles Range for different fitness levels."},
		{Name: "Cultural Diversity", Type: "Cultural Experience", Rating: 4.1, Description: "Experience multicultural society with Buddhist, Hindu, and Muslim communities."},
	},
	"Weligama": {
		{Name: "Weligama Beach", Type: "Beach", Rating: 4.5, Description: "Long sandy beach famous for surfing, stilt fishermen, and whale watching."},
		{Name: "Stilt Fishermen", Type: "Cultural Experience", Rating: 4.4, Description: "Iconic traditional fishing method unique to Weligama area."},
		{Name: "Surfing Lessons", Type: "Surfing Lessons", Rating: 4.6, Description: "Surf schools offering lessons for beginners in gentle waves."},
		{Name: "Taprobane Island", Type: "Island", Rating: 4.3, Description: "Private island with luxury villa, accessible during low tide."},
		{Name: "Whale Watching", Type: "Wildlife Tour", Rating: 4.5, Description: "Boat tours to see blue whales and dolphins from Weligama harbor."},
		{Name: "Polhena Beach", Type: "Beach", Rating: 4.4, Description: "Sheltered beach with coral reef, ideal for snorkeling and safe swimming."},
		{Name: "Local Markets", Type: "Market", Rating: 4.1, Description: "Markets selling fresh seafood, local produce, and handicrafts."},
		{Name: "Beachfront Restaurants", Type: "Dining", Rating: 4.3, Description: "Restaurants serving fresh seafood with ocean views."},
		{Name: "Water Sports", Type: "Adventure Sports", Rating: 4.2, Description: "Various water activities including kayaking and paddle boarding."},
		{Name: "Sunset Views", Type: "Viewpoint", Rating: 4.5, Description: "Beautiful sunsets over Indian Ocean from Weligama beach."},
	},
}
