package catalog

var defaultServices = []Service{
	{
		ID:          "1",
		Title:       "Campanhas Publicitárias",
		Category:    "Campanhas",
		Description: "A emoção de cada data, eternizada na foto certa.",
		MainImage:   "imgs/campanhas/pascoa1.jpg",
		Summary:     "Desenvolvemos campanhas publicitárias completas para empresas que desejam fortalecer sua identidade visual. Trabalhamos com modelos profissionais, styling, produção e direção de arte.",
		Content: `<h3>Transforme sua marca com imagens profissionais</h3>
<p>Nossas campanhas publicitárias são desenvolvidas para elevar a identidade visual da sua empresa. Trabalhamos com:</p>
<ul>
    <li><strong>Fotografia de produto</strong> - Destaque os detalhes e qualidade dos seus produtos</li>
    <li><strong>Campanhas institucionais</strong> - Fortaleça a imagem da sua marca</li>
    <li><strong>Books profissionais</strong> - Para modelos, atores e influenciadores</li>
    <li><strong>Conteúdo para redes sociais</strong> - Imagens otimizadas para cada plataforma</li>
</ul>
<p>Utilizamos equipamento de última geração e técnicas avançadas de iluminação para garantir resultados excepcionais.</p>`,
		Duration:  "4-6 horas",
		Equipment: "Câmeras Canon EOS R5/R6, lentes profissionais, iluminação de estúdio",
		Price:     "A partir de R$ 800,00",
		Includes:  "50 fotos editadas, rights de uso, direção de arte, produção",
	},
	{
		ID:          "2",
		Title:       "Ensaios Gestantes",
		Category:    "Gestantes",
		Description: "Capturando a beleza e magia da maternidade",
		MainImage:   "imgs/gestantes/dalila.jpg",
		Summary:     "Registramos esse momento único com sensibilidade e cuidado. Sessões que celebram a vida e a conexão entre mãe e bebê.",
		Content: `<h3>Eternize esse momento único</h3>
<p>Nossos ensaios de gestante são realizados com todo cuidado e sensibilidade para registrar essa fase especial. Oferecemos:</p>
<ul>
    <li><strong>Ensaios em estúdio</strong> - Controle total de iluminação e ambiente</li>
    <li><strong>Ensaios externos</strong> - Natureza e cenários urbanos</li>
    <li><strong>Ensaios em casa</strong> - Ambiente familiar e aconchegante</li>
    <li><strong>Ensaio com parceiro(a)</strong> - Incluindo pai e/ou irmãos</li>
</ul>
<p>Trabalhamos com poses naturais que destacam a conexão entre mãe e bebê, criando memórias que você guardará para sempre.</p>`,
		Duration:  "2-3 horas",
		Equipment: "Câmeras profissionais, lentes específicas, iluminação suave",
		Price:     "A partir de R$ 450,00",
		Includes:  "20 fotos editadas, 1 ampliação, álbum digital, 2 looks",
	},
	{
		ID:          "3",
		Title:       "Ensaios Infantis",
		Category:    "Infantil",
		Description: "Guardando a melhor fase das brincadeiras mais lindas",
		MainImage:   "imgs/infantil/infantil2.jpg",
		Summary:     "Ambiente seguro e divertido para capturar a pureza e espontaneidade das crianças. Trabalhamos com temáticas criativas.",
		Content: `<h3>Capture a pureza da infância</h3>
<p>Especializados em fotografia infantil, criamos ambientes seguros e divertidos onde as crianças podem ser elas mesmas. Oferecemos:</p>
<ul>
    <li><strong>Newborn (0-3 meses)</strong> - Sessões suaves e delicadas</li>
    <li><strong>Baby (3-12 meses)</strong> - Capturando descobertas e sorrisos</li>
    <li><strong>Infantil (1-5 anos)</strong> - Brincadeiras e personalidade</li>
    <li><strong>Família</strong> - Incluindo pais e irmãos</li>
</ul>
<p>Temos brinquedos, acessórios e cenários temáticos para tornar a experiência ainda mais especial.</p>`,
		Duration:  "1-2 horas",
		Equipment: "Câmeras rápidas, lentes apropriadas, brinquedos e acessórios",
		Price:     "A partir de R$ 300,00",
		Includes:  "15 fotos editadas, 1 ampliação, álbum digital, 1 look",
	},
	{
		ID:          "4",
		Title:       "Eventos Especiais",
		Category:    "Eventos",
		Description: "Cobertura completa dos seus momentos especiais",
		MainImage:   "imgs/eventos/Casamento1.jpg",
		Summary:     "Casamentos, aniversários, formaturas. Documentamos cada emoção do seu evento com profissionalismo e discrição.",
		Content: `<h3>Documente cada emoção do seu evento</h3>
<p>Oferecemos cobertura completa para diversos tipos de eventos, capturando momentos espontâneos e emocionantes:</p>
<ul>
    <li><strong>Casamentos</strong> - Cobertura completa do grande dia</li>
    <li><strong>Aniversários</strong> - Festas de 15 anos, adultos e infantis</li>
    <li><strong>Formaturas</strong> - Cerimônias e festas</li>
    <li><strong>Eventos corporativos</strong> - Palestras, workshops e confraternizações</li>
</ul>
<p>Trabalhamos de forma discreta para não interferir no evento, garantindo fotos naturais e cheias de emoção.</p>`,
		Duration:  "Personalizado por evento",
		Equipment: "Múltiplas câmeras, lentes variadas, flash profissional",
		Price:     "Sob consulta",
		Includes:  "Fotos editadas, álbum físico, pen drive, cobertura completa",
	},
}

var defaultGalleries = map[string][]Photo{
	"Campanhas": {
		{Image: "imgs/campanhas/S6A6193.jpg", Title: "Produção Profissional"},
		{Image: "imgs/campanhas/S6A6759.jpg", Title: "Direção de Arte"},
		{Image: "imgs/campanhas/S6A7845.jpg", Title: "Books Comerciais"},
	},
	"Gestantes": {
		{Image: "imgs/gestantes/dalila2.jpg", Title: "Close-up Maternal"},
		{Image: "imgs/gestantes/G56A5488.jpg", Title: "Silhueta Gestante"},
		{Image: "imgs/gestantes/G56A5645.jpg", Title: "Ensaios Externos"},
	},
	"Infantil": {
		{Image: "imgs/infantil/infantil3.jpg", Title: "Brinquedos e Diversão"},
		{Image: "imgs/infantil/GS6A5171-2.jpg", Title: "Sorrisos Espontâneos"},
		{Image: "imgs/infantil/GS6A5477.jpg", Title: "Newborn"},
	},
	"Eventos": {
		{Image: "imgs/eventos/Casamento2.jpg", Title: "Casamentos"},
		{Image: "imgs/eventos/Casamento3.jpg", Title: "Cerimônias"},
		{Image: "imgs/eventos/G56A0102.jpg", Title: "Eventos Familiares"},
	},
}
