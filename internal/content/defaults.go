package content

import "wordduel/internal/domain"

// Built-in default content, used whenever the remote content service is
// unavailable or unconfigured.

var defaultWords = []domain.Word{
	{Word: "mountain", Difficulty: "easy"},
	{Word: "whisper", Difficulty: "easy"},
	{Word: "journey", Difficulty: "easy"},
	{Word: "shadow", Difficulty: "easy"},
	{Word: "lantern", Difficulty: "medium"},
	{Word: "harvest", Difficulty: "medium"},
	{Word: "compass", Difficulty: "medium"},
	{Word: "velvet", Difficulty: "medium"},
	{Word: "labyrinth", Difficulty: "hard"},
	{Word: "ephemeral", Difficulty: "hard"},
	{Word: "serendipity", Difficulty: "hard"},
	{Word: "mirage", Difficulty: "hard"},
}

var defaultTranslations = []domain.TranslationItem{
	{English: "the red house", Correct: "la casa roja", Distractors: []string{"el coche rojo", "la mesa roja", "la casa azul"}, Difficulty: "easy"},
	{English: "good morning", Correct: "buenos dias", Distractors: []string{"buenas noches", "hasta luego", "por favor"}, Difficulty: "easy"},
	{English: "I am hungry", Correct: "tengo hambre", Distractors: []string{"tengo sed", "estoy cansado", "tengo frio"}, Difficulty: "easy"},
	{English: "where is the station", Correct: "donde esta la estacion", Distractors: []string{"donde esta el banco", "que hora es", "cuanto cuesta"}, Difficulty: "easy"},
	{English: "the book is on the table", Correct: "el libro esta sobre la mesa", Distractors: []string{"el libro esta en la silla", "la mesa esta limpia", "el cuaderno esta aqui"}, Difficulty: "medium"},
	{English: "it rains a lot in spring", Correct: "llueve mucho en primavera", Distractors: []string{"hace calor en verano", "nieva en invierno", "hay viento en otono"}, Difficulty: "medium"},
	{English: "she sings beautifully", Correct: "ella canta hermosamente", Distractors: []string{"ella baila bien", "ella habla despacio", "ella corre rapido"}, Difficulty: "medium"},
	{English: "we will travel tomorrow", Correct: "viajaremos manana", Distractors: []string{"viajamos ayer", "llegamos hoy", "salimos anoche"}, Difficulty: "medium"},
	{English: "the weather is getting colder", Correct: "el clima se esta enfriando", Distractors: []string{"el clima esta mejorando", "hace mucho sol", "el cielo esta despejado"}, Difficulty: "medium"},
	{English: "he forgot his keys again", Correct: "olvido sus llaves otra vez", Distractors: []string{"perdio su cartera ayer", "encontro sus llaves", "dejo su telefono"}, Difficulty: "medium"},
	{English: "could you help me please", Correct: "podrias ayudarme por favor", Distractors: []string{"puedes venir conmigo", "quieres comer algo", "sabes donde esta"}, Difficulty: "medium"},
	{English: "the children are playing outside", Correct: "los ninos estan jugando afuera", Distractors: []string{"los ninos estan durmiendo", "las ninas estan leyendo", "los ninos estan comiendo"}, Difficulty: "medium"},
	{English: "I have lived here for ten years", Correct: "he vivido aqui por diez anos", Distractors: []string{"vivi alli hace diez anos", "vivire aqui diez anos", "estoy viviendo con amigos"}, Difficulty: "hard"},
	{English: "if I had known, I would have come", Correct: "si lo hubiera sabido habria venido", Distractors: []string{"si lo se vengo", "cuando lo supe vine", "aunque lo sabia no vine"}, Difficulty: "hard"},
	{English: "despite the rain, the match continued", Correct: "a pesar de la lluvia el partido continuo", Distractors: []string{"debido a la lluvia el partido termino", "antes de la lluvia el partido empezo", "durante la lluvia el partido paro"}, Difficulty: "hard"},
	{English: "hardly anyone noticed the mistake", Correct: "casi nadie noto el error", Distractors: []string{"todos notaron el error", "alguien corrigio el error", "nadie cometio errores"}, Difficulty: "hard"},
}

var defaultMetaphors = []domain.TranslationItem{
	{English: "time is money", Correct: "el tiempo es oro", Distractors: []string{"el tiempo vuela", "el dinero manda", "el oro brilla"}, Difficulty: "easy"},
	{English: "it's raining cats and dogs", Correct: "llueve a cantaros", Distractors: []string{"llueven perros", "hace mal tiempo", "caen gatos del cielo"}, Difficulty: "medium"},
	{English: "to kill two birds with one stone", Correct: "matar dos pajaros de un tiro", Distractors: []string{"cazar dos aves", "tirar dos piedras", "perder dos oportunidades"}, Difficulty: "medium"},
	{English: "the early bird catches the worm", Correct: "a quien madruga dios le ayuda", Distractors: []string{"el pajaro come gusanos", "madrugar es sano", "el que espera desespera"}, Difficulty: "medium"},
	{English: "to have a heart of gold", Correct: "tener un corazon de oro", Distractors: []string{"tener buena salud", "ser muy rico", "tener mano dura"}, Difficulty: "easy"},
	{English: "better late than never", Correct: "mas vale tarde que nunca", Distractors: []string{"nunca es tarde para nada", "llegar tarde es malo", "mejor pronto que tarde"}, Difficulty: "easy"},
	{English: "to be on cloud nine", Correct: "estar en las nubes", Distractors: []string{"estar bajo la lluvia", "volar muy alto", "estar en el cielo raso"}, Difficulty: "medium"},
	{English: "actions speak louder than words", Correct: "los hechos valen mas que las palabras", Distractors: []string{"hablar es facil", "las palabras vuelan", "actuar sin pensar"}, Difficulty: "hard"},
	{English: "to bite off more than you can chew", Correct: "el que mucho abarca poco aprieta", Distractors: []string{"comer demasiado", "morder con fuerza", "masticar despacio"}, Difficulty: "hard"},
	{English: "every cloud has a silver lining", Correct: "no hay mal que por bien no venga", Distractors: []string{"las nubes traen lluvia", "todo tiene su lado malo", "el cielo siempre cambia"}, Difficulty: "hard"},
	{English: "the ball is in your court", Correct: "la pelota esta en tu tejado", Distractors: []string{"juegas muy bien", "es tu turno de servir", "la cancha es tuya"}, Difficulty: "medium"},
	{English: "to let the cat out of the bag", Correct: "irse de la lengua", Distractors: []string{"soltar al gato", "abrir la bolsa", "perder la paciencia"}, Difficulty: "hard"},
	{English: "once in a blue moon", Correct: "de higos a brevas", Distractors: []string{"cada luna llena", "una vez al mes", "en noches azules"}, Difficulty: "hard"},
	{English: "to burn the midnight oil", Correct: "quemarse las pestanas", Distractors: []string{"quemar aceite", "dormir hasta tarde", "apagar la luz"}, Difficulty: "medium"},
	{English: "a piece of cake", Correct: "pan comido", Distractors: []string{"un trozo de pastel", "cosa dulce", "harina de otro costal"}, Difficulty: "easy"},
	{English: "to cost an arm and a leg", Correct: "costar un ojo de la cara", Distractors: []string{"costar poco", "pagar con el cuerpo", "doler mucho"}, Difficulty: "medium"},
}
