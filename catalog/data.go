package catalog

const (
	sampleBucket = "https://storage.googleapis.com/gtv-videos-bucket/sample/"

	// FallbackPoster is shown when a poster fails to load.
	FallbackPoster = "https://images.unsplash.com/photo-1485846234645-a62644f84728?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80"
)

var movies = []Movie{
	{
		ID:          "1",
		Title:       "Big Buck Bunny",
		Description: "Three rodents amuse themselves by harassing creatures of the forest. However, the squirrel they tease is not as helpless as he appears.",
		Thumbnail:   sampleBucket + "images/BigBuckBunny.jpg",
		VideoURL:    sampleBucket + "BigBuckBunny.mp4",
		Duration:    "9:56",
		Genre:       []string{"Animation", "Short"},
	},
	{
		ID:          "2",
		Title:       "Elephant Dream",
		Description: "The first Blender Open Movie from 2006",
		Thumbnail:   sampleBucket + "images/ElephantsDream.jpg",
		VideoURL:    sampleBucket + "ElephantsDream.mp4",
		Duration:    "10:53",
		Genre:       []string{"Animation", "Fantasy"},
	},
	{
		ID:          "3",
		Title:       "Sintel",
		Description: "A lonely girl called Sintel searches for a baby dragon she calls Scales.",
		Thumbnail:   sampleBucket + "images/Sintel.jpg",
		VideoURL:    sampleBucket + "Sintel.mp4",
		Duration:    "14:48",
		Genre:       []string{"Animation", "Adventure"},
	},
	{
		ID:          "4",
		Title:       "Tears of Steel",
		Description: "In a post-apocalyptic world, a group of survivors try to save humanity from robot domination.",
		Thumbnail:   sampleBucket + "images/TearsOfSteel.jpg",
		VideoURL:    sampleBucket + "TearsOfSteel.mp4",
		Duration:    "12:14",
		Genre:       []string{"Sci-Fi", "Action"},
	},
	{
		ID:          "5",
		Title:       "Subaru Outback",
		Description: "Driving in the country",
		Thumbnail:   sampleBucket + "images/SubaruOutbackOnStreetAndDirt.jpg",
		VideoURL:    sampleBucket + "SubaruOutbackOnStreetAndDirt.mp4",
		Duration:    "0:20",
		Genre:       []string{"Commercial"},
	},
	{
		ID:          "6",
		Title:       "What care means",
		Description: "Smoking awareness video",
		Thumbnail:   "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
		VideoURL:    sampleBucket + "WhatCareMeans.mp4",
		Duration:    "0:42",
		Genre:       []string{"Public Service"},
	},
	{
		ID:          "7",
		Title:       "For Bigger Blazes",
		Description: "HBO GO now works with Chromecast",
		Thumbnail:   sampleBucket + "images/ForBiggerBlazes.jpg",
		VideoURL:    sampleBucket + "ForBiggerBlazes.mp4",
		Duration:    "0:15",
		Genre:       []string{"Commercial", "Tech"},
	},
	{
		ID:          "8",
		Title:       "For Bigger Escapes",
		Description: "Introducing Chromecast, the easiest way to enjoy online video on your TV",
		Thumbnail:   sampleBucket + "images/ForBiggerEscapes.jpg",
		VideoURL:    sampleBucket + "ForBiggerEscapes.mp4",
		Duration:    "0:15",
		Genre:       []string{"Commercial", "Tech"},
	},
	{
		ID:          "9",
		Title:       "For Bigger Fun",
		Description: "Introducing Chromecast. The easiest way to enjoy online video and music on your TV",
		Thumbnail:   sampleBucket + "images/ForBiggerFun.jpg",
		VideoURL:    sampleBucket + "ForBiggerFun.mp4",
		Duration:    "0:60",
		Genre:       []string{"Commercial", "Tech"},
	},
	{
		ID:          "10",
		Title:       "For Bigger Joyrides",
		Description: "Introducing Chromecast. Control your TV with your phone, tablet, or laptop",
		Thumbnail:   sampleBucket + "images/ForBiggerJoyrides.jpg",
		VideoURL:    sampleBucket + "ForBiggerJoyrides.mp4",
		Duration:    "0:15",
		Genre:       []string{"Commercial", "Tech"},
	},
	{
		ID:          "11",
		Title:       "For Bigger Meltdowns",
		Description: "Google Chromecast: For Bigger Meltdowns",
		Thumbnail:   sampleBucket + "images/ForBiggerMeltdowns.jpg",
		VideoURL:    sampleBucket + "ForBiggerMeltdowns.mp4",
		Duration:    "0:15",
		Genre:       []string{"Commercial", "Tech"},
	},
	{
		ID:          "12",
		Title:       "The Mysterious Life",
		Description: "A dive into the ocean and the wonders hidden beneath the surface",
		Thumbnail:   "https://images.unsplash.com/photo-1560275619-4662e36fa65c?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
		VideoURL:    sampleBucket + "BigBuckBunny.mp4",
		Duration:    "5:22",
		Genre:       []string{"Nature", "Documentary"},
	},
}
